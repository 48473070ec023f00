package cli

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/postmeapp/postme/internal/client/models"
	"github.com/postmeapp/postme/internal/common"
)

// botReplyDelay is how long the pen pal "thinks" before mail arrives.
// Variable so tests can shorten the wait.
var botReplyDelay = 2500 * time.Millisecond

var colorNames = map[string]string{
	"bg-red-50":     "rose",
	"bg-pink-100":   "pink",
	"bg-blue-100":   "blue",
	"bg-green-100":  "green",
	"bg-yellow-100": "yellow",
	"bg-purple-100": "purple",
	"bg-white":      "magic white",
}

func colorName(c string) string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return c
}

// pickColor prompts for a paper color. An empty answer picks one at random,
// the way a real stationery drawer works.
func (a *App) pickColor() (string, error) {
	fmt.Println("Pick a paper color:")
	for i, c := range common.LetterColors {
		fmt.Printf("  %d. %s\n", i+1, colorName(c))
	}

	answer, err := GetSimpleText(a.reader, "Number (Enter for a surprise)", os.Stdout)
	if err != nil {
		return "", err
	}

	if answer == "" {
		return common.LetterColors[rand.Intn(len(common.LetterColors))], nil
	}

	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(common.LetterColors) {
		fmt.Println("That's not on the list, picking a surprise color!")
		return common.LetterColors[rand.Intn(len(common.LetterColors))], nil
	}
	return common.LetterColors[n-1], nil
}

func (a *App) Send(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	to, err := GetSimpleText(a.reader, "Who is this letter for? (try 'postbot' for a magic pen pal)", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	content, err := GetMultiline(a.reader, "Write your letter:", os.Stdout)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	color, err := a.pickColor()
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	letter := models.NewLetter(a.userID, to, content, color)

	if err := a.letterService.Save(ctx, letter); err != nil {
		fmt.Println("The carrier pigeon got lost! Please try again.")
		a.logger.Error(ctx, "send failed", "error", err.Error())
		return err
	}

	fmt.Printf("Letter sent to %s! 🕊️\n", letter.To)

	if common.IsBotUsername(letter.To) {
		go a.deliverBotReply(ctx, letter)
	}
	return nil
}

// deliverBotReply generates and stores the pen pal's answer in the
// background, then lets the user know mail has arrived.
func (a *App) deliverBotReply(ctx context.Context, original *models.Letter) {
	time.Sleep(botReplyDelay)

	content := a.penpal.GenerateReply(ctx, original.From, original.Content)
	reply := models.NewBotReply(original, content)

	if err := a.letterService.Save(ctx, reply); err != nil {
		a.logger.Error(ctx, "bot reply save failed", "error", err.Error())
		return
	}

	printlnFn("💌 You've got mail! Check your inbox.")
}
