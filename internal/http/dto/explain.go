package dto

type ExplainRequest struct {
	URL            string `json:"url" binding:"required,max=2048"`
	ConversationID *int64 `json:"conversationId"`
}

type ExplainResponse struct {
	Explanation    string            `json:"explanation"`
	ConversationID int64             `json:"conversationId"`
	RepoContext    string            `json:"repoContext"`
	RepoStructure  string            `json:"repoStructure,omitempty"`
	KeyFiles       map[string]string `json:"keyFiles,omitempty"`
}

type ChatRequest struct {
	Message        string            `json:"message" binding:"required"`
	ConversationID int64             `json:"conversationId" binding:"required"`
	RepoContext    string            `json:"repoContext"`
	RepoStructure  string            `json:"repoStructure"`
	KeyFiles       map[string]string `json:"keyFiles"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
