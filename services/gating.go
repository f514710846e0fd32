package services

import (
	"coinquest/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CanComplete reports whether every prerequisite of m is completed or
// claimed in the working set. A mission with no prerequisites is ungated; a
// prerequisite missing from the set blocks completion. Failing the gate is
// not terminal: progress is still recorded and the mission is re-evaluated
// on the next pass.
func CanComplete(m models.Mission, working map[primitive.ObjectID]models.Mission) bool {
	for _, req := range m.RequiredMissionIDs {
		prereq, ok := working[req]
		if !ok || !prereq.Status.Finished() {
			return false
		}
	}
	return true
}
