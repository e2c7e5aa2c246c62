package systems

import (
	"github.com/automoto/echoes-of-ember/gamemath"
	"github.com/solarlune/resolv"
)

func rectOf(obj *resolv.Object) gamemath.Rect {
	return gamemath.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

// overlapping returns the objects carrying any of tags that truly overlap obj
// moved by (dx, dy). resolv only narrows the search to shared cells.
func overlapping(obj *resolv.Object, dx, dy float64, tags ...string) []*resolv.Object {
	check := obj.Check(dx, dy, tags...)
	if check == nil {
		return nil
	}
	moved := rectOf(obj).Offset(dx, dy)
	var hits []*resolv.Object
	for _, o := range check.ObjectsByTags(tags...) {
		if o == obj {
			continue
		}
		if moved.Overlaps(rectOf(o)) {
			hits = append(hits, o)
		}
	}
	return hits
}

// groundBelow returns a solid the object is standing on, if any.
func groundBelow(obj *resolv.Object, solidTag string) *resolv.Object {
	bottom := obj.Y + obj.H
	for _, o := range overlapping(obj, 0, 1, solidTag) {
		if o.Y >= bottom-0.5 {
			return o
		}
	}
	return nil
}
