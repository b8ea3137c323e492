package chinacoord

import "fmt"

// Default is a float64 converter without border detection.
var Default *Converter[float64]

func init() {
	var err error
	Default, err = NewFloat64Converter()
	if err != nil {
		panic(fmt.Sprintf("error constructing float64 converter: %s", err))
	}
}
