package store

// Repository aggregates every sub-repository behind a single handle so
// wiring code only constructs one object.
type Repository struct {
	ds *Datastore

	Workspace      *WorkspaceRepository
	Resource       *ResourceRepository
	Recommendation *RecommendationRepository
	JobRun         *JobRunRepository
}

// NewRepository opens the database and wires every sub-repository onto
// the same datastore.
func NewRepository(dsn string) (*Repository, error) {
	ds, err := NewDatastore(dsn)
	if err != nil {
		return nil, err
	}

	return &Repository{
		ds:             ds,
		Workspace:      NewWorkspaceRepository(ds),
		Resource:       NewResourceRepository(ds),
		Recommendation: NewRecommendationRepository(ds),
		JobRun:         NewJobRunRepository(ds),
	}, nil
}

// GetDatastore returns the underlying datastore for transaction support.
func (r *Repository) GetDatastore() *Datastore {
	return r.ds
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.ds.Close()
}
