package testutil

import "github.com/bmauss/KNN-Imputation-Evaluation/pkg/data"

// Iris returns ten rows shaped like the iris dataset: two numeric features,
// one categorical feature and a categorical target.
func Iris() *data.Dataset {
	ds, err := data.New(
		data.NumericColumn("sepal_length", 5.1, 4.9, 4.7, 7.0, 6.4, 6.9, 6.3, 5.8, 7.1, 6.3),
		data.NumericColumn("petal_length", 1.4, 1.4, 1.3, 4.7, 4.5, 4.9, 6.0, 5.1, 5.9, 5.6),
		data.CategoricalColumn("habitat", "shore", "shore", "meadow", "meadow", "forest", "forest", "shore", "meadow", "forest", "shore"),
		data.CategoricalColumn("species", "setosa", "setosa", "setosa", "versicolor", "versicolor", "versicolor", "virginica", "virginica", "virginica", "virginica"),
	)
	if err != nil {
		panic(err)
	}
	return ds
}

// TwoFeatures returns a 10-row dataset with two numeric features and a
// numeric target.
func TwoFeatures() *data.Dataset {
	ds, err := data.New(
		data.NumericColumn("x", 1, 2, 3, 4, 5, 6, 7, 8, 9, 10),
		data.NumericColumn("y", 10, 20, 30, 40, 50, 60, 70, 80, 90, 100),
		data.NumericColumn("label", 0, 0, 0, 0, 0, 1, 1, 1, 1, 1),
	)
	if err != nil {
		panic(err)
	}
	return ds
}
