package services

import (
	"testing"

	"coinquest/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCanCompleteNoPrerequisites(t *testing.T) {
	m := models.Mission{ID: primitive.NewObjectID()}
	if !CanComplete(m, map[primitive.ObjectID]models.Mission{}) {
		t.Errorf("Expected mission without prerequisites to be ungated")
	}
}

func TestCanCompletePrerequisiteStates(t *testing.T) {
	prereq := models.Mission{ID: primitive.NewObjectID(), Status: models.MissionActive}
	m := models.Mission{ID: primitive.NewObjectID(), RequiredMissionIDs: []primitive.ObjectID{prereq.ID}}
	working := map[primitive.ObjectID]models.Mission{prereq.ID: prereq}

	if CanComplete(m, working) {
		t.Errorf("Expected active prerequisite to block completion")
	}

	prereq.Status = models.MissionCompleted
	working[prereq.ID] = prereq
	if !CanComplete(m, working) {
		t.Errorf("Expected completed prerequisite to unlock completion")
	}

	prereq.Status = models.MissionClaimed
	working[prereq.ID] = prereq
	if !CanComplete(m, working) {
		t.Errorf("Expected claimed prerequisite to unlock completion")
	}
}

func TestCanCompleteMissingPrerequisite(t *testing.T) {
	m := models.Mission{ID: primitive.NewObjectID(), RequiredMissionIDs: []primitive.ObjectID{primitive.NewObjectID()}}
	if CanComplete(m, map[primitive.ObjectID]models.Mission{}) {
		t.Errorf("Expected missing prerequisite to block completion")
	}
}

func TestCanCompleteMultiplePrerequisites(t *testing.T) {
	done := models.Mission{ID: primitive.NewObjectID(), Status: models.MissionCompleted}
	pending := models.Mission{ID: primitive.NewObjectID(), Status: models.MissionActive}
	m := models.Mission{ID: primitive.NewObjectID(), RequiredMissionIDs: []primitive.ObjectID{done.ID, pending.ID}}
	working := map[primitive.ObjectID]models.Mission{done.ID: done, pending.ID: pending}

	if CanComplete(m, working) {
		t.Errorf("Expected one unfinished prerequisite to block completion")
	}
}
