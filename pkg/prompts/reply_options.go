package prompts

var replyOptionsTemplate = mustParse("reply_options", `You are a love coach who is very good at helping clients come up with the right strategy and exact reply in communication to reach their short-term and long-term relationship goals. I'm your client seeking your advice.

Write 4 distinguishable reply options for me to {{.P.Name}} as my next reply in the current conversation dialog; based on the communication strategy and context below. Each reply option should explore different directions or aspects of the interaction.
Output in {{orNone .P.Language}}:
###
Current conversation dialog: """
{{orNone .Convo}}
"""
Communication strategy: """
{{orNone .Strategy}}
"""
Context: """
my gender: {{.ClientGender}}
I'm talking to {{.P.Name}} online
{{.P.Name}}'s gender: {{orNone .P.Gender}}
{{.P.Name}}'s personality: {{orNone .P.Personality}}
relationship context: {{orNone .P.RelationshipContext}}
my feelings about our relationship: {{orNone .P.RelationshipPerception}}
my short-term goal with {{.P.Name}}: {{orNone .P.RelationshipGoals}}
my long-term goal with {{.P.Name}}: {{orNone .P.RelationshipGoalsLong}}
relationship dynamic: {{orNone .Analysis}}
"""
###
`)

// ReplyOptions builds the prompt asking for four distinguishable replies.
func ReplyOptions(profile Profile, clientGender string, convo, strategy, analysis *string) Prompt {
	if clientGender == "" {
		clientGender = None
	}
	return Prompt{
		System: render(replyOptionsTemplate, struct {
			P            Profile
			ClientGender string
			Convo        *string
			Strategy     *string
			Analysis     *string
		}{profile, clientGender, convo, strategy, analysis}),
		User: outputIn(profile.Language),
	}
}
