package service

import (
	"strings"

	"github.com/pep299/learntube/internal/completion"
)

const systemInstruction = "You are an expert educator who creates structured learning courses from video content. CRITICAL: You must respond with ONLY valid JSON. Do not include any markdown formatting, code blocks, or any text before or after the JSON. Return only the raw JSON object."

const courseSchema = `{
  "title": "Practical [Topic] Course: [Specific Skill from Video]",
  "description": "A hands-on course teaching [specific skills] with step-by-step tutorials you can follow along with",
  "chapters": [
    {
      "title": "[Specific Topic from Video]",
      "content": "Tutorial content that teaches HOW to do something: prerequisites, step-by-step instructions with exact commands, real examples from the video, common pitfalls, and the end result",
      "keyPoints": [
        {
          "title": "[Specific Skill/Technique from Video]",
          "steps": [
            "Step 1: [Exact action with specific details, commands, or procedures]",
            "Step 2: [Next specific action with file names/commands if mentioned]",
            "Step 3: [Continue with precise steps from the video]",
            "Step 4: [Include troubleshooting or tips mentioned]",
            "Step 5: [Verification or completion step]"
          ],
          "example": "[Real example directly from the video transcript]",
          "commands": ["[actual command from video]", "[another command mentioned]"],
          "tryThis": "[Specific exercise the learner should try]",
          "troubleshooting": "[Common issues and solutions mentioned in video]",
          "timestamp": "[approximate time when this topic is discussed]",
          "stepImages": [
            {
              "stepIndex": 0,
              "description": "[What the viewer sees on screen during this step]",
              "searchQuery": "[specific tool/interface from video]"
            }
          ],
          "resourceLinks": [
            {
              "title": "[Relevant Documentation]",
              "url": "[actual URL if mentioned in video]",
              "description": "[Why this resource is useful for this step]",
              "type": "documentation"
            }
          ]
        }
      ]
    }
  ],
  "keyConcepts": ["[8 to 12 specific terms, tools or techniques discussed in the video]"],
  "summary": "Summary of what was actually taught and how to apply it",
  "quiz": [
    {
      "question": "[Practical question testing a key concept from the video]",
      "options": ["[Option A]", "[Option B]", "[Option C]", "[Option D]"],
      "correctAnswer": 0,
      "explanation": "[Why this answer is right, referencing the video]"
    }
  ]
}`

const promptRequirements = `LEARNING REQUIREMENTS:
1. Create actionable, step-by-step tutorials someone can follow along with.
2. Include the specific commands, code snippets, file paths and procedures from the video.
3. Use real examples and direct quotes from the transcript.
4. Give every lesson a hands-on "Try This" exercise.
5. Include the troubleshooting tips and common mistakes mentioned in the video.
6. Progress logically from beginner to advanced concepts.

The response is rejected if:
- keyPoints have empty or generic steps arrays
- keyConcepts has fewer than 8 items or generic placeholders
- content is not taken from the transcript
- steps are vague instead of specific and actionable

The response must:
- have 5 or more detailed steps for each keyPoint
- list 8-12 concepts that were genuinely discussed in the video
- include a stepImages entry for each step, using the exact tool and interface names the speaker shows or mentions as searchQuery (for example "vscode terminal integrated", "github new repository", "npm install terminal")
- include 2-4 resourceLinks per keyPoint with real, working URLs to official documentation, downloads, tutorials or examples
- only use these resourceLinks types: "documentation", "tutorial", "tool", "download", "example"`

// BuildCoursePrompt embeds the transcript and the exact response schema
// into the completion request.
func BuildCoursePrompt(transcript, videoTitle string) completion.Prompt {
	if videoTitle == "" {
		videoTitle = "Unknown"
	}

	var sb strings.Builder
	sb.WriteString("You are an expert educator creating a practical learning course from a YouTube video transcript. The course must be something a learner can follow along with, not just read.\n\n")
	sb.WriteString("Video Title: ")
	sb.WriteString(videoTitle)
	sb.WriteString("\n\nTranscript: ")
	sb.WriteString(transcript)
	sb.WriteString("\n\n")
	sb.WriteString(promptRequirements)
	sb.WriteString("\n\nCreate a JSON response with this EXACT structure:\n")
	sb.WriteString(courseSchema)
	sb.WriteString("\n")

	return completion.Prompt{
		System: systemInstruction,
		User:   sb.String(),
	}
}
