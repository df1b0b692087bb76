package model

// RepoRef identifies a GitHub repository parsed from a user-supplied URL.
// Owner and Repo are the first two path segments, case preserved.
type RepoRef struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
	URL   string `json:"url"`
}

// FullName returns the "owner/repo" form used as a conversation title.
func (r RepoRef) FullName() string {
	return r.Owner + "/" + r.Repo
}

// RepoContext is the repository material an assistant response is grounded
// in. It lives only in request/response scope: the server echoes it back to
// the caller, and chat calls resupply it. Structure and KeyFiles are
// best-effort extras; Readme is the minimum for a grounded explanation.
type RepoContext struct {
	Readme    string            `json:"readme"`
	Structure string            `json:"structure,omitempty"`
	KeyFiles  map[string]string `json:"key_files,omitempty"`
}

// Empty reports whether the context carries no repository material at all.
func (rc *RepoContext) Empty() bool {
	return rc == nil || (rc.Readme == "" && rc.Structure == "" && len(rc.KeyFiles) == 0)
}
