package notifier

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/himalayan-adventures/trek-api/internal/models"
)

// Notifier posts booking activity to the operations channel. Failures are
// logged, never propagated to the booking flow.
type Notifier interface {
	NotifyBooking(user models.User, booking models.Booking) error
	NotifyCancellation(user models.User, booking models.Booking) error
}

type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(session *discordgo.Session, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

func (n *DiscordNotifier) NotifyBooking(user models.User, booking models.Booking) error {
	message := fmt.Sprintf("🏔️ **New Booking**\n**Reference:** %s\n**User:** %s (%s)\n**Trek:** %s\n**Dates:** %s - %s\n**Travelers:** %d\n**Package:** %s\n**Total:** ₹%.0f\n**Payment:** %s",
		booking.BookingReference,
		user.FullName,
		user.Email,
		booking.Trek.Title,
		booking.TrekStartDate,
		booking.TrekEndDate,
		booking.ParticipantsCount,
		booking.PackageType,
		booking.TotalAmount,
		booking.PaymentStatus,
	)
	return n.send(message)
}

func (n *DiscordNotifier) NotifyCancellation(user models.User, booking models.Booking) error {
	reason := booking.CancellationReason
	if reason == "" {
		reason = "not given"
	}
	message := fmt.Sprintf("❌ **Booking Cancelled**\n**Reference:** %s\n**User:** %s (%s)\n**Trek:** %s\n**Reason:** %s",
		booking.BookingReference,
		user.FullName,
		user.Email,
		booking.Trek.Title,
		reason,
	)
	return n.send(message)
}

func (n *DiscordNotifier) send(message string) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}

	return nil
}
