package store

import (
	"testing"

	"finops/internal/store/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDatastore opens an in-memory sqlite database and migrates every
// model this package's repositories touch. sqlite stands in for MySQL
// here only as a test double: the repositories only ever use portable
// GORM clauses (OnConflict, AssignmentColumns, plain Where/Update), none
// of which are MySQL-specific.
func newTestDatastore(t *testing.T) *Datastore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Resource{}, &model.Recommendation{}, &model.Workspace{}, &model.JobRun{}))
	return NewDatastoreFromDB(db)
}
