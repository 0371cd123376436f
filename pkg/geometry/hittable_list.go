package geometry

import "github.com/df07/go-raytracer/pkg/core"

// HittableList is the scene aggregate: an ordered collection of hittables
// that answers closest-hit queries across all members
type HittableList struct {
	objects []Hittable
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	list := &HittableList{}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends an object to the list
func (l *HittableList) Add(object Hittable) {
	l.objects = append(l.objects, object)
}

// Clear removes every object
func (l *HittableList) Clear() {
	l.objects = nil
}

// Len returns the number of objects
func (l *HittableList) Len() int {
	return len(l.objects)
}

// Hit returns the closest intersection among all objects. Each object is
// tested against [rayT.Min, closestSoFar] so later candidates only have to
// beat the current best.
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval) (*HitRecord, bool) {
	var closestHit *HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.objects {
		if hit, isHit := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
