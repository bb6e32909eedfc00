package model

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformFacebook  Platform = "facebook"
	PlatformOther     Platform = "other"
)

var Platforms = []Platform{
	PlatformInstagram,
	PlatformYouTube,
	PlatformTikTok,
	PlatformTwitter,
	PlatformLinkedIn,
	PlatformFacebook,
	PlatformOther,
}

type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
	CampaignCancelled CampaignStatus = "cancelled"
)

var CampaignStatuses = []CampaignStatus{
	CampaignDraft,
	CampaignActive,
	CampaignPaused,
	CampaignCompleted,
	CampaignCancelled,
}

// IDInput is the input of every get-by-id procedure.
type IDInput struct {
	ID int `json:"id" validate:"required,gt=0"`
}

type InfluencerIDInput struct {
	InfluencerID int `json:"influencer_id" validate:"required,gt=0"`
}

type SponsorIDInput struct {
	SponsorID int `json:"sponsor_id" validate:"required,gt=0"`
}
