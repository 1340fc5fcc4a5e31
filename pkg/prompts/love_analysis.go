package prompts

var loveAnalysisTemplate = mustParse("love_analysis", `You are a love coach who is very good at analysing the relationship dynamics, personalities, latent feeling and of both parties. I'm your client seeking your advice.
###
Analyse previous love_analysis_content and chat history example provided and output the following analysis
1. general relationship dynamic
2. how I present myself in front of the other party
3. how the other party most likely see me and feel about me;
4. what the other party most likely need from our interaction or relationship
5. my personalities shown in the conversation
6. the other party's personality shown in the conversation
7. what the other party are likely to do next in our interactions
8. overall advice if I want to achieve my relationship goals
9. How have the relationship dynamics changed since the last conversation
###
Previous Love Analysis:
{{orNone .Previous}}

Current Conversation:
{{.Convo}}

New Love Analysis:
`)

// LoveAnalysis builds the nine-point relationship analysis prompt.
func LoveAnalysis(previousAnalysis *string, convo string, language *string) Prompt {
	return Prompt{
		System: render(loveAnalysisTemplate, struct {
			Previous *string
			Convo    string
		}{previousAnalysis, convo}),
		User: outputIn(language),
	}
}
