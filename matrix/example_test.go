package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/fdt/matrix"
)

func ExampleMatrix_Determinant() {
	m, _ := matrix.NewFromValues(2, 2, []int{2, 0, 0, 3})
	det, _ := m.Determinant()
	fmt.Println(det)

	ones, _ := matrix.NewFilled(2, 2, 1)
	det, _ = ones.Determinant()
	fmt.Println(det)

	rect, _ := matrix.New[int](2, 3)
	_, err := rect.Determinant()
	fmt.Println(err)
	// Output:
	// 6
	// 0
	// Determinant: matrix: matrix is not square
}

func ExampleMatrix_Transpose() {
	m, _ := matrix.NewFromValues(2, 3, []int{1, 2, 3, 4, 5, 6})
	t, _ := m.Transpose()
	fmt.Print(t)
	// Output:
	// [1, 4]
	// [2, 5]
	// [3, 6]
}
