package transfer

type ContentCreation struct {
	Platform string   `json:"platform"`
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"`
}

type PostCreation struct {
	Title        string            `json:"title"`
	Status       string            `json:"status"`
	ScheduledFor string            `json:"scheduled_for"`
	MediaURLs    []string          `json:"media_urls"`
	Contents     []ContentCreation `json:"contents"`
}

type PostStatusUpdate struct {
	PostID int64  `json:"post_id"`
	Status string `json:"status"`
}
