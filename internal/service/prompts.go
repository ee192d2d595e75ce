package service

import (
	"fmt"

	"influenceos-backend/internal/model"
)

// 提示词模板集中在服务端维护，前端永远只传结构化字段。
// 模板必须保持确定性：相同输入编译出逐字节相同的提示词。

const agentSystemPrompt = `You are InfluenceOS, an orchestrated AI collective for digital influencers.
- Provide actionable, structured plans.
- When needed, reference the suite of tools available: Image Studio, Video Studio, Growth Engine.
- Suggest next actions and call-to-action items.
- Respond in markdown with headers, bullet lists, and tables when helpful.
- Keep tone confident, strategic, and energetic.
- If the user explicitly requests visual generation, recommend switching to the Visual Creator.
- If the user requests video creation from images, suggest the Video Director module.
- Always end with a short "Command Queue" list of the most important next steps.`

const agentFallbackReply = "I could not synthesize a response. Confirm your OpenAI configuration."

const strategyFallbackReply = "Unable to craft strategy. Confirm your OpenAI configuration."

// BuildImagePrompt 在用户创意简报后追加固定的设计参数块，
// 编译结果原样返回给调用方展示
func BuildImagePrompt(req *model.ImageRequest) string {
	vibe := req.Vibe
	if vibe == "" {
		vibe = "creator-defined"
	}

	return fmt.Sprintf(`%s

Design parameters:
- format: %s
- aesthetic vibe: %s
- deliverable: social media ready, high contrast, text legible, brand-safe`, req.Prompt, req.Format, vibe)
}

// BuildStrategyPrompt 渲染增长策略模板，可选字段留空时使用固定兜底文案
func BuildStrategyPrompt(req *model.StrategyRequest) string {
	constraints := req.Constraints
	if constraints == "" {
		constraints = "None specified"
	}
	cadence := req.Cadence
	if cadence == "" {
		cadence = "Suggested by you"
	}

	return fmt.Sprintf(`You are InfluenceOS, a growth operating system for influencers.

Persona Summary:
%s

Growth Objectives:
%s

Constraints:
%s

Publishing Cadence:
%s

Deliver a markdown strategy file including:
- Narrative positioning statement
- Audience insight bullets
- Content pillars with example post formats
- Channel mix with cadence recommendations
- 14-day content calendar table (Day | Channel | Hook | CTA)
- Scripts & caption guidelines
- Measurement stack with metrics, rituals, tooling
- Partnering & monetization opportunities
End with a Mission Debrief list of next actions.`, req.Persona, req.Goals, constraints, cadence)
}
