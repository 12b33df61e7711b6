package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hirewire-labs/hirewire-cli/internal/core/domain"
	"github.com/hirewire-labs/hirewire-cli/internal/core/services"
)

var (
	contactSearch string
	contactJSON   bool

	contactName    string
	contactCompany string
	contactRole    string
	contactEmail   string
	contactDate    string
	contactNotes   string
)

var contactCmd = &cobra.Command{
	Use:     "contact",
	Aliases: []string{"contacts"},
	Short:   "Manage networking contacts",
}

var contactListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts",
	Args:  cobra.NoArgs,
	RunE:  runContactList,
}

var contactAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a contact",
	Args:  cobra.NoArgs,
	RunE:  runContactAdd,
}

var contactDeleteCmd = &cobra.Command{
	Use:     "delete [id]",
	Aliases: []string{"rm"},
	Short:   "Delete a contact",
	Args:    cobra.ExactArgs(1),
	RunE:    runContactDelete,
}

func init() {
	contactListCmd.Flags().StringVarP(&contactSearch, "search", "q", "", "filter by name or company")
	contactListCmd.Flags().BoolVar(&contactJSON, "json", false, "output as JSON")

	contactAddCmd.Flags().StringVar(&contactName, "name", "", "contact name (required)")
	contactAddCmd.Flags().StringVar(&contactCompany, "company", "", "company")
	contactAddCmd.Flags().StringVar(&contactRole, "role", "", "role")
	contactAddCmd.Flags().StringVar(&contactEmail, "email", "", "email address")
	contactAddCmd.Flags().StringVar(&contactDate, "last-contact", "", "date of last contact (YYYY-MM-DD, default today)")
	contactAddCmd.Flags().StringVar(&contactNotes, "notes", "", "notes")

	contactCmd.AddCommand(contactListCmd, contactAddCmd, contactDeleteCmd)
	rootCmd.AddCommand(contactCmd)
}

func runContactList(cmd *cobra.Command, _ []string) error {
	tracker, err := requireTracker()
	if err != nil {
		return err
	}

	contacts := services.SearchContacts(tracker.Contacts(), contactSearch)
	if contactJSON {
		return printJSON(cmd, contacts)
	}

	if len(contacts) == 0 {
		cmd.Println("No contacts found.")
		return nil
	}

	cmd.Printf("%-36s  %-20s  %-20s  %-20s  %s\n", "ID", "NAME", "COMPANY", "ROLE", "LAST CONTACT")
	for _, c := range contacts {
		cmd.Printf("%-36s  %-20s  %-20s  %-20s  %s\n",
			c.ID, truncate(c.Name, 20), truncate(c.Company, 20), truncate(c.Role, 20), c.LastContact)
	}
	return nil
}

func runContactAdd(cmd *cobra.Command, _ []string) error {
	tracker, err := requireTracker()
	if err != nil {
		return err
	}

	if contactDate != "" {
		if _, ok := domain.ParseDate(contactDate); !ok {
			return fmt.Errorf("invalid date %q: %w", contactDate, domain.ErrInvalidInput)
		}
	}

	added, err := tracker.AddContact(cmd.Context(), domain.Contact{
		Name:        contactName,
		Company:     contactCompany,
		Role:        contactRole,
		Email:       contactEmail,
		LastContact: contactDate,
		Notes:       contactNotes,
	})
	if err != nil {
		return fmt.Errorf("failed to add contact: %w", err)
	}

	cmd.Printf("Added contact %s (%s)\n", added.Name, added.ID)
	return nil
}

func runContactDelete(cmd *cobra.Command, args []string) error {
	tracker, err := requireTracker()
	if err != nil {
		return err
	}

	if err := tracker.DeleteContact(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	cmd.Printf("Deleted %s\n", args[0])
	return nil
}
