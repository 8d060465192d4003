package transfer

type OptimizeRequest struct {
	Caption   string   `json:"caption"`
	Platforms []string `json:"platforms"`
	Tone      string   `json:"tone"`
}

type PlatformSuggestion struct {
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"`
}

type OptimizeResult struct {
	Suggestions map[string]PlatformSuggestion `json:"suggestions"`
}
