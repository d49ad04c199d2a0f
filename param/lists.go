package param

import (
	"time"

	"github.com/shopspring/decimal"
)

// Slice converters that reduce the boilerplate of building parameter lists,
// e.g. for feeding an IN (?,?,...) placeholder run.

func Ints(list []int32) []Parameter {
	result := make([]Parameter, 0, len(list))
	for _, item := range list {
		result = append(result, Int(item))
	}
	return result
}

func Longs(list []int64) []Parameter {
	result := make([]Parameter, 0, len(list))
	for _, item := range list {
		result = append(result, Long(item))
	}
	return result
}

func Doubles(list []float64) []Parameter {
	result := make([]Parameter, 0, len(list))
	for _, item := range list {
		result = append(result, Double(item))
	}
	return result
}

func Strings(list []string) []Parameter {
	result := make([]Parameter, 0, len(list))
	for _, item := range list {
		result = append(result, String(item))
	}
	return result
}

func Dates(list []time.Time) []Parameter {
	result := make([]Parameter, 0, len(list))
	for _, item := range list {
		result = append(result, Date(item))
	}
	return result
}

func DateTimes(list []time.Time) []Parameter {
	result := make([]Parameter, 0, len(list))
	for _, item := range list {
		result = append(result, DateTime(item))
	}
	return result
}

func Decimals(list []decimal.Decimal) []Parameter {
	result := make([]Parameter, 0, len(list))
	for _, item := range list {
		result = append(result, Decimal(item))
	}
	return result
}

// Map builds a parameter list from arbitrary data through a getter, e.g.
// Map(users, func(u User) Parameter { return String(u.Name) }).
func Map[T any](list []T, get func(T) Parameter) []Parameter {
	result := make([]Parameter, 0, len(list))
	for _, item := range list {
		result = append(result, get(item))
	}
	return result
}
