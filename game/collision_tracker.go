// File: game/collision_tracker.go
package game

// CollisionKey represents a unique collision pair.
// Object1ID is the moving object (a ball id), Object2ID the surface it touches.
type CollisionKey struct {
	Object1ID int
	Object2ID int
}

// paddleObjectID is the Object2ID used for ball/paddle contacts.
const paddleObjectID = -1

// CollisionTracker remembers which contacts are ongoing, so the action tied
// to a contact runs once when it begins and not on every tick of overlap.
// It belongs to one Game and is not safe for concurrent use.
type CollisionTracker struct {
	activeCollisions map[CollisionKey]bool
}

func NewCollisionTracker() *CollisionTracker {
	return &CollisionTracker{
		activeCollisions: make(map[CollisionKey]bool),
	}
}

// BeginCollision registers a contact. It returns true only if the contact was
// not already active.
func (ct *CollisionTracker) BeginCollision(key CollisionKey) bool {
	if ct.activeCollisions[key] {
		return false
	}
	ct.activeCollisions[key] = true
	return true
}

// EndCollision forgets a contact once the objects have separated.
func (ct *CollisionTracker) EndCollision(key CollisionKey) {
	delete(ct.activeCollisions, key)
}

// ForgetObject1 drops every contact of object1ID, e.g. when a ball is lost.
func (ct *CollisionTracker) ForgetObject1(object1ID int) {
	for key := range ct.activeCollisions {
		if key.Object1ID == object1ID {
			delete(ct.activeCollisions, key)
		}
	}
}
