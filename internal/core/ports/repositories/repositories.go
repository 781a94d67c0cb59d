package repositories

// RepositoryProvider bundles every repository implementation so the service
// container can be built from a single value.
type RepositoryProvider struct {
	UserRepo  UserRepository
	TokenRepo TokenRepository
	FileRepo  FileRepository
	AuditRepo AuditRepository
	BlobStore BlobStore
}
