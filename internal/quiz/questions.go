package quiz

// CompatibilityQuestion is one step of the A/B vibe quiz users take to get
// matched with Buddies.
type CompatibilityQuestion struct {
	ID      int    `json:"id"`
	Prompt  string `json:"question"`
	OptionA string `json:"option_a"`
	OptionB string `json:"option_b"`
}

// CertificationQuestion is one step of the boundary-knowledge quiz a
// prospective Buddy must pass. CorrectAnswer is never serialized; the
// public view goes through ToPublicView.
type CertificationQuestion struct {
	ID            int    `json:"id"`
	Prompt        string `json:"question"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	CorrectAnswer string `json:"-"`
}

// CertificationPublicView is the safe serialization of a certification
// question — the correct answer stays server-side.
type CertificationPublicView struct {
	ID      int    `json:"id"`
	Prompt  string `json:"question"`
	OptionA string `json:"option_a"`
	OptionB string `json:"option_b"`
	OptionC string `json:"option_c"`
}

func (q CertificationQuestion) ToPublicView() CertificationPublicView {
	return CertificationPublicView{
		ID:      q.ID,
		Prompt:  q.Prompt,
		OptionA: q.OptionA,
		OptionB: q.OptionB,
		OptionC: q.OptionC,
	}
}

var CompatibilityQuestions = []CompatibilityQuestion{
	{ID: 1, Prompt: "Vibe Check", OptionA: "High Energy (Concerts/Clubs)", OptionB: "Low Energy (Bookstores/Parks)"},
	{ID: 2, Prompt: "The Screen", OptionA: "Movies/Documentaries", OptionB: "Reality TV/Sitcoms"},
	{ID: 3, Prompt: "Activity", OptionA: "Walking/Exploring", OptionB: "Sitting/Chatting"},
	{ID: 4, Prompt: "Noise Level", OptionA: "Loud/Bustling", OptionB: "Quiet/Intimate"},
	{ID: 5, Prompt: "Topics", OptionA: "Work/Ambition", OptionB: "Life/Relationships"},
	{ID: 6, Prompt: "Humor", OptionA: "Sarcastic/Witty", OptionB: "Kind/Wholesome"},
	{ID: 7, Prompt: "Time of Day", OptionA: "Early Bird (Coffee)", OptionB: "Night Owl (Evening walk)"},
	{ID: 8, Prompt: "Social Battery", OptionA: "I want someone to talk a lot", OptionB: "I want someone to listen a lot"},
	{ID: 9, Prompt: "Interests", OptionA: "Tech/Gaming", OptionB: "Art/Nature"},
	{ID: 10, Prompt: "Structure", OptionA: "Totally random talk", OptionB: "Having a specific goal"},
}

var CertificationQuestions = []CertificationQuestion{
	{ID: 1, Prompt: "A user asks for your opinion on their antidepressant medication. You:", OptionA: "Share your personal experience with medications", OptionB: "Explain you're not qualified to discuss medications and suggest speaking with their doctor", OptionC: "Research the medication online and share what you find", CorrectAnswer: "B"},
	{ID: 2, Prompt: "A user starts crying heavily during your session. You:", OptionA: "Immediately try to cheer them up and change the subject", OptionB: "Sit quietly, offer tissues, and let them know you're there for them", OptionC: "Ask probing questions to understand why they're crying", CorrectAnswer: "B"},
	{ID: 3, Prompt: "A user invites you to meet at their private home. You:", OptionA: "Accept if they seem trustworthy", OptionB: "Politely decline and suggest a public café or park instead", OptionC: "Ask if anyone else will be home", CorrectAnswer: "B"},
	{ID: 4, Prompt: "How would you describe your role as a Buddy?", OptionA: "A life coach who provides guidance and advice", OptionB: "A peer listener who offers empathy and companionship", OptionC: "An unlicensed therapist who helps solve problems", CorrectAnswer: "B"},
	{ID: 5, Prompt: "A user mentions they've been having thoughts of self-harm. You:", OptionA: "Tell them to think positive and it will pass", OptionB: "Listen calmly, then use the Escalate button to connect them with crisis resources", OptionC: "Promise to keep it secret between you two", CorrectAnswer: "B"},
	{ID: 6, Prompt: "A user asks you to diagnose what's wrong with them mentally. You:", OptionA: "Give your best guess based on what they've told you", OptionB: "Explain that only licensed professionals can provide diagnoses", OptionC: "Look up symptoms online and suggest possibilities", CorrectAnswer: "B"},
	{ID: 7, Prompt: "During a session, a user shares something illegal they did. You:", OptionA: "Report them to authorities immediately", OptionB: "Listen without judgment and remind them of your role's limits", OptionC: "Lecture them about their choices", CorrectAnswer: "B"},
	{ID: 8, Prompt: "A user wants to add you on personal social media. You:", OptionA: "Accept to build a stronger connection", OptionB: "Politely explain you keep Buddy relationships on the platform for both safety", OptionC: "Give them a fake account to follow", CorrectAnswer: "B"},
	{ID: 9, Prompt: "Your user seems to be developing romantic feelings for you. You:", OptionA: "Ignore it and hope it goes away", OptionB: "Address it kindly but clearly, reinforcing the Buddy boundaries", OptionC: "End the Buddy relationship without explanation", CorrectAnswer: "B"},
	{ID: 10, Prompt: "A user asks you to lend them money. You:", OptionA: "Lend a small amount if you can afford it", OptionB: "Decline and explain financial exchanges are not part of the Buddy role", OptionC: "Offer to pay for their next session instead", CorrectAnswer: "B"},
	{ID: 11, Prompt: "You're having a really bad day before a session. You:", OptionA: "Cancel last minute without reason", OptionB: "Take a moment to center yourself, or reschedule if unable to be present", OptionC: "Vent about your problems to the user during the session", CorrectAnswer: "B"},
	{ID: 12, Prompt: "A user keeps interrupting and talking over you. You:", OptionA: "Talk louder to be heard", OptionB: "Gently acknowledge their enthusiasm and find natural pauses to contribute", OptionC: "Stay silent for the rest of the session", CorrectAnswer: "B"},
	{ID: 13, Prompt: "A user shares beliefs or values very different from yours. You:", OptionA: "Try to change their mind to match your views", OptionB: "Listen with curiosity and respect, without judgment", OptionC: "Tell them you can't work with someone who thinks differently", CorrectAnswer: "B"},
	{ID: 14, Prompt: "A user hasn't shown up for your scheduled video call after 15 minutes. You:", OptionA: "Send an angry message about wasting your time", OptionB: "Send a friendly check-in message and wait a bit more before marking as no-show", OptionC: "Report them to TerraBuddy support immediately", CorrectAnswer: "B"},
	{ID: 15, Prompt: "A user shares that they're going through a divorce. You:", OptionA: "Share your opinions about their partner", OptionB: "Listen empathetically and ask how they're feeling about it", OptionC: "Give legal advice about the divorce process", CorrectAnswer: "B"},
	{ID: 16, Prompt: "After your session, a user texts you late at night in distress. You:", OptionA: "Respond immediately no matter the time", OptionB: "Respond when available, remind them of crisis resources, and suggest booking another session", OptionC: "Ignore the message completely", CorrectAnswer: "B"},
	{ID: 17, Prompt: "A user asks you to keep something secret from TerraBuddy staff. You:", OptionA: "Promise to keep their secret no matter what", OptionB: "Explain you can't promise confidentiality if there's a safety concern", OptionC: "Immediately share everything with staff", CorrectAnswer: "B"},
	{ID: 18, Prompt: "During an in-person meetup, a user appears intoxicated. You:", OptionA: "Continue the session as normal", OptionB: "Politely end the session early and suggest rescheduling when they're sober", OptionC: "Lecture them about drinking", CorrectAnswer: "B"},
	{ID: 19, Prompt: "A user says 'You're the only one who understands me.' You:", OptionA: "Feel flattered and encourage this dependency", OptionB: "Acknowledge their feelings while gently encouraging other support connections too", OptionC: "Tell them they're being dramatic", CorrectAnswer: "B"},
	{ID: 20, Prompt: "You notice a user has booked 3 sessions per day every day. You:", OptionA: "Accept all bookings for the income", OptionB: "Express concern and suggest a healthier frequency, flagging to support if needed", OptionC: "Cancel all their sessions without explanation", CorrectAnswer: "B"},
}

// CertificationQuestionCount is the score an application must report to be
// accepted: one point per question, all of them.
var CertificationQuestionCount = len(CertificationQuestions)

// CertificationPublicViews returns the bank with correct answers withheld.
func CertificationPublicViews() []CertificationPublicView {
	views := make([]CertificationPublicView, len(CertificationQuestions))
	for i, q := range CertificationQuestions {
		views[i] = q.ToPublicView()
	}
	return views
}
