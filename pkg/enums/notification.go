package enums

// NotificationKind identifies an outbound signal the storefront raises for the UI.
type NotificationKind string

const (
	NotificationKindItemsAdded NotificationKind = "items_added"
)

// String implements fmt.Stringer.
func (k NotificationKind) String() string {
	return string(k)
}
