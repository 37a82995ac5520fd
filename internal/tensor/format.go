package tensor

import (
	"fmt"
	"strings"
)

// String returns a human-readable representation of the tensor:
//
//	Tensor(dtype=f32, ndims=2, offset=0, shape=[2, 2], stride=[2, 1], values=[1, 2, 3, 4])
func (t *Tensor) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tensor(dtype=%s, ndims=%d, offset=%d, shape=%s, stride=%s, values=",
		t.dtype, len(t.shape), t.offset, joinInts(t.shape), joinInts(t.stride))

	values, err := t.Values()
	if err != nil {
		fmt.Fprintf(&b, "<%v>)", err)
		return b.String()
	}
	b.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprint(float32(v)))
	}
	b.WriteString("])")
	return b.String()
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
