package main

import "github.com/bmauss/KNN-Imputation-Evaluation/internal/cli"

func main() {
	cli.Execute()
}
