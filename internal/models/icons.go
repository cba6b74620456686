package models

// iconNames is the closed catalog of icon names the presentation layer can
// render. Icon references are validated against this set on entry and
// resolved through it on display, so a stored name can never miss silently.
var iconNames = []string{
	"Activity", "Airplay", "AlarmClock", "AlertCircle", "AlignCenter", "Archive", "ArrowDown", "ArrowLeft", "ArrowRight", "ArrowUp",
	"Award", "Banknote", "BarChart", "Bell", "Bike", "Book", "BookOpen", "Bookmark", "Briefcase", "Building", "Bus", "Calculator", "Calendar",
	"Camera", "Car", "CheckCircle", "ChevronDown", "ChevronLeft", "ChevronRight", "ChevronUp", "Clipboard", "Clock", "Cloud",
	"Code", "Coffee", "Coins", "Compass", "Computer", "CreditCard", "DollarSign", "Download", "Edit", "ExternalLink", "Eye",
	"File", "Film", "Filter", "Flag", "Folder", "Gift", "Globe", "Gamepad2", "Grab", "Grid", "Heart", "HeartPulse", "HelpCircle", "Home", "Image",
	"Inbox", "Info", "Key", "Landmark", "Laptop", "LayoutDashboard", "Lightbulb", "Link", "List", "Loader", "Lock", "LogIn", "LogOut",
	"Mail", "Map", "MapPin", "Maximize", "Menu", "MessageCircle", "Mic", "Minimize", "MinusCircle", "Monitor", "Moon", "MoreHorizontal",
	"MousePointer", "Move", "Music", "Navigation", "Package", "Paperclip", "PauseCircle", "Percent", "Phone", "PieChart",
	"PiggyBank", "PlayCircle", "PlusCircle", "Pocket", "Printer", "Puzzle", "ReceiptText", "RefreshCcw", "Repeat", "Rocket", "Save", "Scale",
	"Scissors", "Search", "Send", "Server", "Settings", "Share2", "Shield", "ShoppingBag", "ShoppingCart", "Shapes", "Smartphone", "Smile",
	"Sparkles", "Speaker", "Star", "Sun", "Table", "Tag", "Target", "Terminal", "ThumbsDown", "ThumbsUp", "Ticket", "Trash2",
	"TrendingDown", "TrendingUp", "Truck", "Tv", "Type", "Umbrella", "Upload", "User", "Users", "Video", "Voicemail", "Volume2",
	"Wallet", "WalletMinimal", "Watch", "Wifi", "Wind", "XCircle", "Youtube", "Zap", "ZoomIn", "ZoomOut",
}

// IconFallback is the icon used for empty or unknown icon references.
const IconFallback = "Shapes"

var iconCatalog = func() map[string]struct{} {
	m := make(map[string]struct{}, len(iconNames))
	for _, name := range iconNames {
		m[name] = struct{}{}
	}
	return m
}()

// ValidIcon reports whether name is part of the icon catalog.
func ValidIcon(name string) bool {
	_, ok := iconCatalog[name]
	return ok
}

// ResolveIcon maps a stored icon name to a renderable one, substituting
// IconFallback for empty or unknown names.
func ResolveIcon(name string) string {
	if ValidIcon(name) {
		return name
	}
	return IconFallback
}
