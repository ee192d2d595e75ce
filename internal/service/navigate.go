package service

import "regexp"

// UI分区标识，前端据此自动切换面板
const (
	SectionVisuals = "visuals"
	SectionVideo   = "video"
	SectionGrowth  = "growth"
)

type navigateCheck struct {
	id       string
	patterns []*regexp.Regexp
}

// 分组顺序即优先级，第一个命中的分组获胜。
// 这是刻意的关键词匹配而非意图模型，行为必须可复现。
var navigateChecks = []navigateCheck{
	{
		id: SectionVisuals,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)image`),
			regexp.MustCompile(`(?i)banner`),
			regexp.MustCompile(`(?i)flyer`),
			regexp.MustCompile(`(?i)visual`),
			regexp.MustCompile(`(?i)graphic`),
			regexp.MustCompile(`(?i)design`),
		},
	},
	{
		id: SectionVideo,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)video`),
			regexp.MustCompile(`(?i)motion`),
			regexp.MustCompile(`(?i)animate`),
		},
	},
	{
		id: SectionGrowth,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)strategy`),
			regexp.MustCompile(`(?i)growth`),
			regexp.MustCompile(`(?i)calendar`),
			regexp.MustCompile(`(?i)plan`),
			regexp.MustCompile(`(?i)campaign`),
		},
	},
}

// AutoNavigate 根据回复文本选择UI分区，无命中时返回空串
func AutoNavigate(reply string) string {
	for _, check := range navigateChecks {
		for _, pattern := range check.patterns {
			if pattern.MatchString(reply) {
				return check.id
			}
		}
	}
	return ""
}
