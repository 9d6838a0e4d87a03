package llm

import "fmt"

func chatSystemPrompt(context string) string {
	prompt := `You are an AI Study Buddy for students in grades 6-12 studying the NCERT syllabus. You should:
- Explain concepts in simple, age-appropriate language
- Use examples and analogies that students can relate to
- Be encouraging and supportive
- Ask follow-up questions to check understanding
- Connect topics to real-world applications
- Use emojis to make responses engaging`
	if context != "" {
		prompt += "\n\nContext: " + context
	}
	return prompt
}

func quizPrompt(subject string, grade int, chapter string, count int) string {
	return fmt.Sprintf(`Generate %d multiple choice questions for NCERT %s Grade %d, Chapter: %s.

Return the response as a JSON object with this exact format:
{
  "questions": [
    {
      "question": "Question text here",
      "options": ["Option A", "Option B", "Option C", "Option D"],
      "correctAnswer": "Option A",
      "explanation": "Explanation of why this is correct"
    }
  ]
}

Make questions appropriate for Grade %d level and ensure they test understanding, not just memorization.`,
		count, subject, grade, chapter, grade)
}

func creativeTaskPrompt(category string) string {
	return fmt.Sprintf(`Generate a creative %s task/prompt suitable for students grades 6-12.

Return the response as JSON with this format:
{
  "title": "Task title",
  "description": "Brief description",
  "prompt": "Detailed creative prompt or instructions",
  "difficulty": "easy|medium|hard"
}

Make it engaging and educational.`, category)
}

func thinkingChallengePrompt(challengeType string) string {
	return fmt.Sprintf(`Generate a %s challenge for students grades 6-12.

Return the response as JSON with this format:
{
  "title": "Challenge title",
  "description": "Challenge description or question",
  "hint": "Optional hint",
  "solution": "Sample solution or approach"
}

Make it thought-provoking and fun.`, challengeType)
}

func mythFactPrompt() string {
	return `Generate an interesting myth or fact suitable for students grades 6-12.

Return the response as JSON with this format:
{
  "title": "Myth/Fact title",
  "statement": "The statement to evaluate",
  "isMyth": true/false,
  "explanation": "Detailed explanation of why it's a myth or fact",
  "category": "science|history|general|academic"
}

Make it educational and surprising.`
}

func dailyLifePrompt(subject string) string {
	return fmt.Sprintf(`Generate a "daily life" question that connects %s to real-world applications for students grades 6-12.

Return the response as JSON with this format:
{
  "question": "How does [concept] relate to daily life?",
  "answer": "Detailed explanation of the real-world connection",
  "realWorldConnection": "Specific examples of how this applies in daily life"
}

Make it relatable and educational.`, subject)
}

func doubtPrompt(question, subject string, grade int) string {
	return fmt.Sprintf(`As an expert teacher, answer this student's doubt about %s for Grade %d:

Question: %s

Provide a clear, detailed explanation that:
- Is appropriate for Grade %d level
- Uses simple language and examples
- Includes diagrams or step-by-step solutions if needed
- Encourages further learning
- Uses emojis to make it engaging`,
		subject, grade, question, grade)
}
