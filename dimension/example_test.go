package dimension_test

import (
	"fmt"

	"dimension-mapper/dimension"
)

func ExampleMap2Indexed() {
	grid := [][]int{{1, 4, 10}, {5, 3, -1}}
	labels := dimension.Map2Indexed(grid, func(v, i1, i2 int) string {
		return fmt.Sprintf("%d@%d,%d", v, i1, i2)
	})
	fmt.Println(labels)

	// Output:
	// [[1@0,0 4@0,1 10@0,2] [5@1,0 3@1,1 -1@1,2]]
}

func ExampleMap() {
	out, err := dimension.Map(2, []any{[]any{1.5, 2.0}, []any{}}, func(v any) float64 {
		return v.(float64) * 2
	})
	fmt.Println(out, err)

	// Output:
	// [[3 4] []] <nil>
}
