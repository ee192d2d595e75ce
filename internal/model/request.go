package model

import (
	"errors"
	"fmt"
	"net/url"
	"unicode/utf8"
)

// 图片格式枚举
const (
	FormatSquare    = "square"
	FormatPortrait  = "portrait"
	FormatLandscape = "landscape"
)

type AgentRequest struct {
	Prompt string `json:"prompt"`
}

func (r *AgentRequest) Validate() error {
	if utf8.RuneCountInString(r.Prompt) < 3 {
		return errors.New("Prompt is too short")
	}
	return nil
}

type ImageRequest struct {
	Prompt string `json:"prompt"`
	Format string `json:"format"`
	Vibe   string `json:"vibe"`
}

func (r *ImageRequest) Validate() error {
	if utf8.RuneCountInString(r.Prompt) < 10 {
		return errors.New("Provide a richer creative brief.")
	}
	switch r.Format {
	case "":
		r.Format = FormatSquare
	case FormatSquare, FormatPortrait, FormatLandscape:
	default:
		return fmt.Errorf("format must be one of %s, %s, %s", FormatSquare, FormatPortrait, FormatLandscape)
	}
	return nil
}

type StrategyRequest struct {
	Persona     string `json:"persona"`
	Goals       string `json:"goals"`
	Constraints string `json:"constraints"`
	Cadence     string `json:"cadence"`
}

func (r *StrategyRequest) Validate() error {
	if utf8.RuneCountInString(r.Persona) < 10 {
		return errors.New("Describe the persona in more detail.")
	}
	if utf8.RuneCountInString(r.Goals) < 10 {
		return errors.New("Outline at least one goal.")
	}
	return nil
}

type VideoRequest struct {
	ImageURL    string  `json:"imageUrl"`
	Concept     string  `json:"concept"`
	Duration    float64 `json:"duration"`
	MotionStyle string  `json:"motionStyle"`
}

func (r *VideoRequest) Validate() error {
	u, err := url.ParseRequestURI(r.ImageURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return errors.New("Provide a valid image URL.")
	}
	if utf8.RuneCountInString(r.Concept) < 5 {
		return errors.New("Describe the motion you expect.")
	}
	if r.Duration < 4 || r.Duration > 12 {
		return errors.New("duration must be between 4 and 12 seconds")
	}
	if utf8.RuneCountInString(r.MotionStyle) < 3 {
		return errors.New("motionStyle must be at least 3 characters")
	}
	return nil
}
