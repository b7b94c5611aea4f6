package main

import "math"

// Equals compares two expressions structurally. Unlike ==, NaN equals NaN,
// so expected results such as ["/", 0, 0] can be compared directly.
func Equals(v1, v2 Expr) bool {
	list1, isList1 := v1.(List)
	list2, isList2 := v2.(List)
	if isList1 || isList2 {
		return isList1 && isList2 && sliceEquals(list1, list2)
	}

	f1, isNum1 := v1.(float64)
	f2, isNum2 := v2.(float64)
	if isNum1 && isNum2 {
		return f1 == f2 || (math.IsNaN(f1) && math.IsNaN(f2))
	}

	return v1 == v2
}

func sliceEquals(slice1, slice2 []Expr) bool {
	if len(slice1) != len(slice2) {
		return false
	}
	for i := 0; i < len(slice1); i++ {
		if !Equals(slice1[i], slice2[i]) {
			return false
		}
	}
	return true
}
