package tutor

import (
	"fmt"
	"strings"

	"github.com/abhisek/sparklearn/internal/difficulty"
)

const tutorSystemPrompt = `You are a friendly, encouraging college tutor. You explain ideas clearly, use relatable examples and keep students motivated.`

func buildExplainMessage(topic string, tier difficulty.Tier) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Explain %q at the %s level for a college student.\n", topic, tier)
	b.WriteString(`
Instructions:
1. Write a clear, multi-paragraph explanation. Use **bold** for key terms and • bullets for key points.
2. Give one real-world analogy or example a college student would relate to.
3. Suggest one specific, actionable 10-minute study task that reinforces the topic. Start it with an emoji.`)
	return b.String()
}

func buildRevisionMessage(topic string, tier difficulty.Tier) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create concise revision notes for %q at the %s level for a college student.\n", topic, tier)
	b.WriteString(`
Use these sections, in order:
- Definition
- Key Concepts (use • for bullet points)
- Important Formulas / Rules
- Common Mistakes
- Quick Tips

Finish with a one-line summary that encourages the student.`)
	return b.String()
}

func buildQuestionsMessage(topic string, tier difficulty.Tier, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate exactly %d multiple choice questions about %q at the %s level for a college student.\n", count, topic, tier)
	b.WriteString(`
Rules:
- Every question has exactly 4 options.
- "correct" is the 0-based index of the right option (0, 1, 2 or 3).
- Number the questions from 1.
- Explain briefly why the right answer is correct.
- Make questions progressively harder.`)
	return b.String()
}

func buildDoubtMessage(question, topic string, history []ChatMessage) string {
	var b strings.Builder
	if topic != "" {
		fmt.Fprintf(&b, "The student is currently studying %q.\n\n", topic)
	}

	if len(history) > 1 {
		recent := history[max(0, len(history)-DoubtContextMessages):]
		b.WriteString("Previous conversation:\n")
		for _, m := range recent {
			who := "Tutor"
			if m.IsUser {
				who = "Student"
			}
			fmt.Fprintf(&b, "%s: %s\n", who, m.Text)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "The student asks: %q\n", question)
	b.WriteString(`
Respond helpfully and clearly:
- Use **bold** for key terms
- Keep the response concise but thorough
- Use bullet points when listing things
- Be encouraging and supportive
- Use 1-2 relevant emojis
- If the question is vague, ask a clarifying follow-up question`)
	return b.String()
}

func buildPlanMessage(subjects []string, tier difficulty.Tier) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed 7-day study plan for a %s-level college student studying: %s.\n", tier, strings.Join(subjects, ", "))
	b.WriteString(`
Rules:
- Include all 7 days (Monday through Sunday)
- Each task type must be one of: study, practice, revision, review, break
- Sunday should be a lighter revision day
- Include breaks
- Each day should have 4-6 tasks
- Give 4 practical, motivational tips with emojis`)
	return b.String()
}
