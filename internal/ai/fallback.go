package ai

import "fmt"

// UpliftQuotes are short encouragements woven into supportive replies when
// the model is unavailable.
var UpliftQuotes = []string{
	"Even the darkest night will end, and the sun will rise.",
	"You are stronger than you know, braver than you feel.",
	"Every storm runs out of rain.",
	"This too shall pass.",
	"You've survived 100% of your worst days.",
	"Healing is not linear, and that's okay.",
	"Small steps still move you forward.",
	"Your feelings are valid, and so is your strength.",
	"Tomorrow is a new canvas to paint upon.",
	"You matter, and your story isn't over yet.",
}

// DefaultMeditationScript returns a canned script used when no provider can
// generate one.
func DefaultMeditationScript(durationMinutes int) string {
	return fmt.Sprintf(`Welcome to this %d-minute meditation session.

Find a comfortable position and gently close your eyes.

Begin by taking three deep breaths:
- Breathe in slowly through your nose... hold... and exhale through your mouth.
- Again, breathe in... hold... and release.
- One more time, deep breath in... and let it all go.

Now, let your breathing return to its natural rhythm.

Notice how your body feels right now. Starting from the top of your head,
slowly scan down through your body, releasing any tension you find.

Your forehead... your jaw... your shoulders... let them all soften.

Continue breathing naturally, knowing that in this moment, you are safe and at peace.

[Continue for %d minutes with gentle guidance]

When you're ready, slowly bring your awareness back to the room.
Wiggle your fingers and toes.
Take a deep breath and open your eyes.

Thank you for taking this time for yourself.`, durationMinutes, durationMinutes)
}

// DefaultSpiritualQuote returns a canned quote with reflection used when no
// provider can generate one.
func DefaultSpiritualQuote() string {
	return `"The best way to find yourself is to lose yourself in the service of others."
- Mahatma Gandhi

This timeless wisdom reminds us that when we focus on helping others,
we often discover our own strength and purpose. In moments of difficulty,
reaching out to support someone else can bring unexpected healing to our own hearts.`
}
