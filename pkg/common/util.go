package common

import (
	"os"
)

func IsProduction() bool {
	return os.Getenv(EnvKeyGoEnv) == "production"
}

// Mapper projects a slice element-wise; used to flatten thermometers to
// ids for alert classification and to build the flat reference series of
// a control chart.
func Mapper[T any, R any](items []T, mapFn func(T) R) []R {
	mapped := make([]R, len(items))
	for i := 0; i < len(items); i++ {
		mapped[i] = mapFn(items[i])
	}
	return mapped
}

// Reducer folds a slice left to right; the band computation uses it for
// the running sums behind mean and dispersion.
func Reducer[T any, R any](items []T, reduceFn func(R, T) R, initAcc R) R {
	finalAcc := initAcc
	for i := 0; i < len(items); i++ {
		finalAcc = reduceFn(finalAcc, items[i])
	}
	return finalAcc
}
