package notifier

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/rajaram-gurukul/utsav-registration/internal/config"
	"github.com/rajaram-gurukul/utsav-registration/internal/form"
)

type Notifier interface {
	NotifySubmission(payload form.SubmissionPayload) error
	NotifyCancellation(bookersEmail, name string) error
}

type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(cfg *config.Config) (*DiscordNotifier, error) {
	if cfg.DiscordBotToken == "" {
		return nil, fmt.Errorf("discord bot token is empty")
	}
	session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		return nil, err
	}
	return &DiscordNotifier{
		session:   session,
		channelID: cfg.DiscordNotificationsChannelID,
	}, nil
}

func (n *DiscordNotifier) NotifySubmission(payload form.SubmissionPayload) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	names := make([]string, 0, len(payload.Participants))
	dateSpan := ""
	for _, p := range payload.Participants {
		names = append(names, p.Name)
		if dateSpan == "" && len(p.AttendingDates) > 0 {
			dateSpan = fmt.Sprintf("%s - %s",
				p.AttendingDates[0], p.AttendingDates[len(p.AttendingDates)-1])
		}
	}

	message := fmt.Sprintf("🎉 **New Registration**\n**Event:** %s\n**Booked by:** %s (%s)\n**Participants (%d):** %s\n**Dates:** %s",
		payload.Event,
		payload.ContactEmail,
		payload.ContactNumber,
		payload.TotalParticipants,
		strings.Join(names, ", "),
		dateSpan,
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}

func (n *DiscordNotifier) NotifyCancellation(bookersEmail, name string) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	message := fmt.Sprintf("😢 **Registration Cancelled**\n**Booked by:** %s\n**Participant:** %s",
		bookersEmail, name)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}
