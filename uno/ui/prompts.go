package ui

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

const drawLabel = "0"

// cardLabel names the option at index: A, B, C...
func cardLabel(index int) string {
	return string(rune('A' + index))
}

func (c *Console) PromptString(message string) (string, error) {
	for {
		c.Println(message)
		input, err := c.readLine()
		if err != nil {
			return "", err
		}
		if input == "" {
			c.Println("Invalid text input")
			continue
		}
		return input, nil
	}
}

func (c *Console) promptLowercaseString(message string) (string, error) {
	input, err := c.PromptString(message)
	return strings.ToLower(input), err
}

func (c *Console) promptUppercaseString(message string) (string, error) {
	input, err := c.PromptString(message)
	return strings.ToUpper(input), err
}

// PromptCardSelection labels cards A, B, C... and returns the chosen one. Entering
// 0 returns nil, meaning the player would rather draw a card.
func (c *Console) PromptCardSelection(cards []card.Card) (card.Card, error) {
	labels := make([]string, 0, len(cards))
	cardOptions := make(map[string]card.Card, len(cards))
	for index, card := range cards {
		label := cardLabel(index)
		labels = append(labels, label)
		cardOptions[label] = card
	}

	cardSelectionLines := []string{"Select a card to play:"}
	for _, label := range labels {
		cardSelectionLines = append(cardSelectionLines, fmt.Sprintf("%s (enter %s)", cardOptions[label], label))
	}
	cardSelectionLines = append(cardSelectionLines, fmt.Sprintf("Draw or pass instead (enter %s)", drawLabel))
	cardSelectionMessage := strings.Join(cardSelectionLines, "\n")

	for {
		selectedLabel, err := c.promptUppercaseString(cardSelectionMessage)
		if err != nil {
			return nil, err
		}
		if selectedLabel == drawLabel {
			return nil, nil
		}
		selectedCard, found := cardOptions[selectedLabel]
		if !found {
			c.Printfln("No card assigned to '%s'", selectedLabel)
			continue
		}
		return selectedCard, nil
	}
}

func (c *Console) PromptColor() (color.Color, error) {
	colorNames := make([]string, 0, len(color.All))
	for _, cardColor := range color.All {
		colorNames = append(colorNames, fmt.Sprintf("'%s'", cardColor))
	}
	last := len(colorNames) - 1
	colorMessage := fmt.Sprintf("Select a color: %s or %s?", strings.Join(colorNames[:last], ", "), colorNames[last])
	for {
		colorName, err := c.promptLowercaseString(colorMessage)
		if err != nil {
			return nil, err
		}
		chosenColor, err := color.ByName(colorName)
		if err != nil {
			c.Printfln("Unknown color '%s'", colorName)
			continue
		}
		return chosenColor, nil
	}
}
