package whatsapp

// A customer clicked an ad that redirects them to WhatsApp,
// this object is included in the messages object.
// https://developers.facebook.com/docs/whatsapp/cloud-api/webhooks/components#messages-object
type Referral struct {

	// The Meta URL that leads to the ad or post clicked by the customer.
	// Opening this url takes you to the ad viewed by your customer.
	SourceURL string `json:"source_url,omitempty"`

	// The type of the ad's source; ad or post.
	SourceType string `json:"source_type,omitempty"`

	// Meta ID for an ad or a post.
	SourceID string `json:"source_id,omitempty"`

	// Headline used in the ad or post.
	Headline string `json:"headline,omitempty"`

	// Body for the ad or post.
	Body string `json:"body,omitempty"`

	// Media present in the ad or post; image or video.
	MediaType string `json:"media_type,omitempty"`

	// URL of the image, when media_type is an image.
	ImageURL string `json:"image_url,omitempty"`

	// URL of the video, when media_type is a video.
	VideoURL string `json:"video_url,omitempty"`

	// URL for the thumbnail, when media_type is a video.
	ThumbnailURL string `json:"thumbnail_url,omitempty"`

	// Click ID generated by Meta for ads that click to WhatsApp.
	CTWAClid string `json:"ctwa_clid,omitempty"`
}
