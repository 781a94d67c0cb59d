package pgsql

import (
	portsrepo "github.com/mwalto7/filevault/internal/core/ports/repositories"
)

// NewRepositoryProvider builds the database-backed repositories over a
// shared pool. The blob store is attached by the caller since it is not a
// database concern.
func NewRepositoryProvider(db PgxPool, blobStore portsrepo.BlobStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:  NewPgxUserRepository(db),
		TokenRepo: NewPgxTokenRepository(db),
		FileRepo:  NewPgxFileRepository(db),
		AuditRepo: NewPgxAuditRepository(db),
		BlobStore: blobStore,
	}
}
