package internal

// Stable sorting of points by an arbitrary ordering. Small inputs use
// insertion sort, larger ones merge sort. Both produce the same order.

type PointLess func(a, b *Point) bool

func SortPoints(points []*Point, less PointLess, threshold int) {
	if len(points) < threshold {
		InsertionSort(points, less)
		return
	}
	MergeSort(points, less)
}

func InsertionSort(points []*Point, less PointLess) {
	for i := 1; i < len(points); i++ {
		p := points[i]
		j := i
		for ; j > 0 && less(p, points[j-1]); j-- {
			points[j] = points[j-1]
		}
		points[j] = p
	}
}

func MergeSort(points []*Point, less PointLess) {
	if len(points) < 2 {
		return
	}
	buffer := make([]*Point, len(points))
	mergeSort(points, buffer, less)
}

func mergeSort(points, buffer []*Point, less PointLess) {
	if len(points) < 2 {
		return
	}
	mid := len(points) / 2
	mergeSort(points[:mid], buffer[:mid], less)
	mergeSort(points[mid:], buffer[mid:], less)

	// Ties take from the left half, which keeps the sort stable
	i, j, k := 0, mid, 0
	for i < mid && j < len(points) {
		if less(points[j], points[i]) {
			buffer[k] = points[j]
			j++
		} else {
			buffer[k] = points[i]
			i++
		}
		k++
	}
	k += copy(buffer[k:], points[i:mid])
	copy(buffer[k:], points[j:])
	copy(points, buffer[:len(points)])
}
