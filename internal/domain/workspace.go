package domain

// WorkspaceSpec describes where a unitconv workspace is created.
type WorkspaceSpec struct {
	Root string
}
