package analysis

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/minutemind/minutemind/internal/domain/entities"
	"github.com/minutemind/minutemind/pkg/ai"
)

const segmentationPrompt = `I have a meeting transcript that I need to segment into distinct topics.

For each topic segment, I need:
1. A descriptive title (e.g., 'Q4 Budget Review')
2. The starting sentence or phrase where the topic begins, including the speaker (e.g., 'Alice: Let's discuss the budget.')
3. The ending sentence or phrase where the topic ends, including the speaker (e.g., 'Bob: Okay, moving on.')
4. A brief summary of what was discussed
5. The key speakers involved in that topic
6. Estimated time spent on the topic in minutes. If timestamps are available in the transcript, use them; otherwise, provide a rough estimate.

Guidelines:
- Each segment should represent a coherent discussion topic
- Identify natural transition points in the conversation, such as changes in subject or explicit statements like 'Let's move to the next item'
- Look for cue phrases that indicate a change in topic, such as 'Let's move on to,' 'Now, regarding,' or 'Next, we have'
- If the transcript mentions an agenda or lists specific items, use those as guides for segmentation
- Some topics might have subtopics; include them within the main topic's summary
- Focus on meaningful content, ignoring small talk or administrative comments
- Be specific with segment titles
- Aim for 3-10 major topic segments, adjusting based on the meeting's complexity
- Ensure all information is directly derived from the transcript; do not make up details

Format your response as JSON with the following structure:
{
  "totalTopics": number,
  "estimatedDuration": "total duration in minutes",
  "topics": [
    {
      "id": 1,
      "title": "Topic title",
      "startPoint": "First few words of where topic begins...",
      "endPoint": "Last few words of where topic ends...",
      "summary": "Brief summary of the topic discussion",
      "keySpeakers": ["Speaker 1", "Speaker 2"],
      "estimatedMinutes": number
    }
  ]
}`

// Segmenter produces the best-effort topic breakdown of a transcript.
// Like the extractor it never returns an error, but its failures only
// cost the enrichment, never the analysis itself.
type Segmenter struct {
	generator ContentGenerator
	logger    *zap.Logger
}

// NewSegmenter creates a new segmenter
func NewSegmenter(generator ContentGenerator, logger *zap.Logger) *Segmenter {
	return &Segmenter{
		generator: generator,
		logger:    logger,
	}
}

// Segment asks the model for topic boundaries. The low temperature keeps
// the model from inventing transitions the transcript does not contain.
func (s *Segmenter) Segment(ctx context.Context, transcript string) *entities.TopicSegmentation {
	prompt := segmentationPrompt + "\n\nTranscript: " + TruncateTranscript(transcript)

	genCfg := &ai.GenerationConfig{
		Temperature:     0.2,
		TopP:            0.8,
		TopK:            40,
		MaxOutputTokens: 8000,
	}

	responseText, err := s.generator.GenerateContent(ctx, prompt, genCfg)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Topic segmentation request failed", zap.Error(err))
		}
		return &entities.TopicSegmentation{
			EstimatedDuration: "Unknown",
			Topics: []entities.Topic{{
				ID:          1,
				Title:       "API Error",
				Summary:     "Failed to process transcript with the Gemini API. Please try again later.",
				KeySpeakers: []string{},
			}},
		}
	}

	var segmentation entities.TopicSegmentation
	if err := json.Unmarshal([]byte(ExtractJSON(responseText)), &segmentation); err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Could not parse segmentation response",
				zap.Error(err),
				zap.String("response_prefix", prefix(responseText, 500)))
		}
		return &entities.TopicSegmentation{
			EstimatedDuration: "Unknown",
			Topics: []entities.Topic{{
				ID:          1,
				Title:       "Error processing transcript",
				Summary:     "Failed to segment transcript into topics. Please review manually.",
				KeySpeakers: []string{},
			}},
		}
	}

	segmentation.EnsureDefaults()

	if s.logger != nil {
		s.logger.Info("✅ Topic segmentation parsed", zap.Int("topics", segmentation.TotalTopics))
	}
	return &segmentation
}
