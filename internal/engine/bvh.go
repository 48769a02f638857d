package engine

import (
	"sort"

	"github.com/brady131313/rtiow/internal/scene"
)

// BVH is a bounding volume hierarchy stored as a flat arena of nodes plus a
// leaf table, rather than a pointer tree. Child references are arena
// indexes; a negative reference is the bit complement of an index into the
// leaf table. Every node has exactly two children, with a lone hittable
// duplicated as both, so traversal never special-cases leaves.
type BVH struct {
	nodes  []bvhNode
	leaves []Hittable
}

type bvhNode struct {
	bbox  AABB
	left  int32
	right int32
}

// NewBVH builds a hierarchy over the given hittables. The slice is copied;
// the caller's order is not disturbed. At least one hittable is required.
func NewBVH(objects []Hittable) *BVH {
	if len(objects) == 0 {
		panic("bvh: empty object list")
	}

	b := &BVH{}
	objs := make([]Hittable, len(objects))
	copy(objs, objects)
	b.build(objs)
	return b
}

// build appends the node covering objs to the arena and returns its index.
// Children are assigned after the recursive calls because appending may
// reallocate the node slice.
func (b *BVH) build(objs []Hittable) int32 {
	bbox := EmptyAABB
	for _, obj := range objs {
		bbox = AABBFromBoxes(bbox, obj.BoundingBox())
	}

	idx := int32(len(b.nodes))
	b.nodes = append(b.nodes, bvhNode{bbox: bbox})

	var left, right int32
	switch len(objs) {
	case 1:
		leaf := b.addLeaf(objs[0])
		left, right = leaf, leaf
	case 2:
		left = b.addLeaf(objs[0])
		right = b.addLeaf(objs[1])
	default:
		axis := bbox.LongestAxis()
		sort.SliceStable(objs, func(i, j int) bool {
			iMin := objs[i].BoundingBox().AxisInterval(axis).Min
			jMin := objs[j].BoundingBox().AxisInterval(axis).Min
			return iMin < jMin
		})

		mid := len(objs) / 2
		left = b.build(objs[:mid])
		right = b.build(objs[mid:])
	}

	b.nodes[idx].left = left
	b.nodes[idx].right = right
	return idx
}

func (b *BVH) addLeaf(obj Hittable) int32 {
	b.leaves = append(b.leaves, obj)
	return ^int32(len(b.leaves) - 1)
}

func (b *BVH) Hit(r Ray, rayT Interval) (HitRecord, bool) {
	return b.hitNode(0, r, rayT)
}

// hitNode tests the left child over the full interval, then tightens the
// interval's upper bound to the left hit before testing the right child, so
// the right subtree can only report something strictly nearer.
func (b *BVH) hitNode(ref int32, r Ray, rayT Interval) (HitRecord, bool) {
	if ref < 0 {
		return b.leaves[^ref].Hit(r, rayT)
	}

	node := b.nodes[ref]
	if !node.bbox.Hit(r, rayT) {
		return HitRecord{}, false
	}

	leftRec, hitLeft := b.hitNode(node.left, r, rayT)

	rightT := rayT
	if hitLeft {
		rightT.Max = leftRec.T
	}
	rightRec, hitRight := b.hitNode(node.right, r, rightT)

	switch {
	case hitLeft && hitRight:
		if rightRec.T < leftRec.T {
			return rightRec, true
		}
		return leftRec, true
	case hitLeft:
		return leftRec, true
	case hitRight:
		return rightRec, true
	default:
		return HitRecord{}, false
	}
}

func (b *BVH) BoundingBox() AABB {
	return b.nodes[0].bbox
}

func (b *BVH) encode(reg *resourceRegistry) scene.Shape {
	return b.encodeNode(0, reg)
}

func (b *BVH) encodeNode(ref int32, reg *resourceRegistry) scene.Shape {
	if ref < 0 {
		return b.leaves[^ref].encode(reg)
	}

	node := b.nodes[ref]
	left := b.encodeNode(node.left, reg)
	right := b.encodeNode(node.right, reg)
	return scene.Shape{Type: scene.ShapeBVH, Left: &left, Right: &right}
}
