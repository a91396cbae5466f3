package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Artist identities form a closed vocabulary. An unknown identity string is
// rejected at write time, never stored.
const (
	IdentityModel           = "model"
	IdentityActor           = "actor"
	IdentityInfluencer      = "influencer"
	IdentityWriter          = "writer"
	IdentityStylist         = "stylist"
	IdentityPhotographer    = "photographer"
	IdentityAdvertisingPro  = "advertising professional"
	IdentitySinger          = "singer"
	IdentityMusician        = "musician"
	IdentityDancer          = "dancer"
	IdentityAnchor          = "anchor"
	IdentityVoiceOver       = "voice-over artist"
	IdentityFilmmaker       = "filmmaker"
	IdentityStandupComedian = "standup-comedian"
)

var knownIdentities = map[string]struct{}{
	IdentityModel: {}, IdentityActor: {}, IdentityInfluencer: {},
	IdentityWriter: {}, IdentityStylist: {}, IdentityPhotographer: {},
	IdentityAdvertisingPro: {}, IdentitySinger: {}, IdentityMusician: {},
	IdentityDancer: {}, IdentityAnchor: {}, IdentityVoiceOver: {},
	IdentityFilmmaker: {}, IdentityStandupComedian: {},
}

// KnownIdentity reports whether identity belongs to the fixed vocabulary.
func KnownIdentity(identity string) bool {
	_, ok := knownIdentities[identity]
	return ok
}

// ModelDetails is shared by the model and advertising-professional identities.
type ModelDetails struct {
	Height string `json:"height,omitempty"`
	Weight string `json:"weight,omitempty"`
	Bust   string `json:"bust,omitempty"`
	Waist  string `json:"waist,omitempty"`
	Hips   string `json:"hips,omitempty"`

	NightWear             bool `json:"nightWear"`
	BikiniSwimwear        bool `json:"bikiniSwimwear"`
	BoldSemiBoldWebSeries bool `json:"boldSemiBoldWebSeries"`
	NudeSemiNudeShoots    bool `json:"nudeSemiNudeShoots"`
	MovieAdAlbumSongs     bool `json:"movieAdAlbumSongs"`
	CalendarShootsAds     bool `json:"calendarShootsAds"`
	TattoosOnBody         bool `json:"tattoosOnBody"`
}

type ActorDetails struct {
	Height         string `json:"height,omitempty"`
	Weight         string `json:"weight,omitempty"`
	CurrentProject string `json:"currentProject,omitempty"`

	BoldScenes        bool `json:"boldScenes"`
	SemiNudeScenes    bool `json:"semiNudeScenes"`
	WebSeries         bool `json:"webSeries"`
	MovieAdAlbumSongs bool `json:"movieAdAlbumSongs"`
	CalendarShootsAds bool `json:"calendarShootsAds"`
	ItemSongs         bool `json:"itemSongs"`
	BackgroundArtist  bool `json:"backgroundArtist"`
	LoveMakingScenes  bool `json:"loveMakingScenes"`
}

type InfluencerDetails struct {
	BrandPromotions bool `json:"brandPromotions"`
	BoldShoots      bool `json:"boldShoots"`
	ReelsAds        bool `json:"reelsAds"`
}

type PhotographerDetails struct {
	BoldShoots        bool `json:"boldShoots"`
	SemiNudeShoots    bool `json:"semiNudeShoots"`
	CalendarShootsAds bool `json:"calendarShootsAds"`
}

type FilmmakerDetails struct {
	ItemSongs           bool `json:"itemSongs"`
	LoveMakingScenes    bool `json:"loveMakingScenes"`
	BoldScenes          bool `json:"boldScenes"`
	MovieAdsAlbumShoots bool `json:"movieAdsAlbumShoots"`
}

type DancerDetails struct {
	BackgroundRole     bool `json:"backgroundRole"`
	ItemSongs          bool `json:"itemSongs"`
	BoldShoots         bool `json:"boldShoots"`
	MovieAdsAlbumSongs bool `json:"movieAdsAlbumSongs"`
}

type SingerDetails struct {
	Genres             string `json:"genres,omitempty"`
	MultipleLanguages  bool   `json:"multipleLanguages"`
	IndustryExperience string `json:"industryExperience,omitempty"`
}

type MusicianDetails struct {
	Instruments     string `json:"instruments,omitempty"`
	AdaptableStyles bool   `json:"adaptableStyles"`
}

type StylistDetails struct {
	ExperienceInStyling string `json:"experienceInStyling,omitempty"`
	ComfortableOnSet    bool   `json:"comfortableOnSet"`
}

// ArtistDetails is the identity-keyed sub-record. A user carries at most one
// populated variant, selected by their identity field. Writer, anchor,
// voice-over artist and standup-comedian carry no structured details.
type ArtistDetails struct {
	Model          *ModelDetails        `json:"model,omitempty"`
	AdvertisingPro *ModelDetails        `json:"advertisingProfessional,omitempty"`
	Actor          *ActorDetails        `json:"actor,omitempty"`
	Influencer     *InfluencerDetails   `json:"influencer,omitempty"`
	Photographer   *PhotographerDetails `json:"photographer,omitempty"`
	Filmmaker      *FilmmakerDetails    `json:"filmmaker,omitempty"`
	Dancer         *DancerDetails       `json:"dancer,omitempty"`
	Singer         *SingerDetails       `json:"singer,omitempty"`
	Musician       *MusicianDetails     `json:"musician,omitempty"`
	Stylist        *StylistDetails      `json:"stylist,omitempty"`
}

// Replace decodes raw into the variant that belongs to identity and replaces
// that variant wholesale. Identities without a details schema, and identities
// outside the vocabulary, are rejected.
func (d *ArtistDetails) Replace(identity string, raw []byte) error {
	decode := func(dst interface{}) error {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		return dec.Decode(dst)
	}

	switch identity {
	case IdentityModel:
		v := &ModelDetails{}
		if err := decode(v); err != nil {
			return err
		}
		d.Model = v
	case IdentityAdvertisingPro:
		v := &ModelDetails{}
		if err := decode(v); err != nil {
			return err
		}
		d.AdvertisingPro = v
	case IdentityActor:
		v := &ActorDetails{}
		if err := decode(v); err != nil {
			return err
		}
		d.Actor = v
	case IdentityInfluencer:
		v := &InfluencerDetails{}
		if err := decode(v); err != nil {
			return err
		}
		d.Influencer = v
	case IdentityPhotographer:
		v := &PhotographerDetails{}
		if err := decode(v); err != nil {
			return err
		}
		d.Photographer = v
	case IdentityFilmmaker:
		v := &FilmmakerDetails{}
		if err := decode(v); err != nil {
			return err
		}
		d.Filmmaker = v
	case IdentityDancer:
		v := &DancerDetails{}
		if err := decode(v); err != nil {
			return err
		}
		d.Dancer = v
	case IdentitySinger:
		v := &SingerDetails{}
		if err := decode(v); err != nil {
			return err
		}
		d.Singer = v
	case IdentityMusician:
		v := &MusicianDetails{}
		if err := decode(v); err != nil {
			return err
		}
		d.Musician = v
	case IdentityStylist:
		v := &StylistDetails{}
		if err := decode(v); err != nil {
			return err
		}
		d.Stylist = v
	default:
		return fmt.Errorf("identity %q has no details schema", identity)
	}
	return nil
}

// HasDetailsSchema reports whether identity carries a structured sub-record.
func HasDetailsSchema(identity string) bool {
	switch identity {
	case IdentityModel, IdentityAdvertisingPro, IdentityActor, IdentityInfluencer,
		IdentityPhotographer, IdentityFilmmaker, IdentityDancer, IdentitySinger,
		IdentityMusician, IdentityStylist:
		return true
	}
	return false
}
