package i18n

import "golang.org/x/text/language"

var translations = map[language.Tag]map[string]string{
	language.English: {
		// Navbar
		"nav_feed":               "Feed",
		"nav_discover":           "Discover",
		"nav_upload":             "Upload",
		"nav_messages":           "Messages",
		"nav_notifications":      "Notifications",
		"nav_profile":            "Profile",
		"nav_dashboard":          "Dashboard",
		"nav_tournaments":        "Tournaments",
		"nav_admin":              "Admin",
		"nav_game":               "Arcade",
		"nav_search_placeholder": "SEARCH_DB...",

		// Landing
		"landing_login":    "Log In",
		"landing_signup":   "Sign Up",
		"landing_subtitle": "A dedicated frequency for producers. Share projects, visualize stems, and collaborate in real-time.",
		"landing_enter":    "Enter Frequency",
		"landing_footer":   "© 2024 EVLFRQ. Audio Engine Active.",

		// Feed
		"feed_add_beat": "Add Beat",
		"feed_end":      "You've reached the end of the tape",

		// Profile
		"profile_edit":      "Edit Profile",
		"profile_connect":   "Connect",
		"profile_connected": "Connected",
		"profile_tracks":    "Tracks",
		"profile_followers": "Followers",
		"profile_following": "Following",

		// Upload
		"upload_title":  "Upload New Beat",
		"upload_submit": "Share to Feed",

		// Discover
		"discover_title":      "Discover",
		"discover_results":    "Search Results",
		"discover_no_results": "No results found for",
		"discover_follow":     "Follow",

		// Notifications
		"notifications_title": "Notifications",
		"notifications_empty": "No notifications yet.",

		// Post detail
		"post_detail_comments":    "Comments",
		"post_detail_add_comment": "Add a comment...",
		"post_detail_no_comments": "No comments yet. Be the first to vibe!",

		// Tournaments
		"tourn_title":         "Beat Tournaments",
		"tourn_active":        "Active",
		"tourn_registration":  "Registration Open",
		"tourn_prize":         "Prize Pool",
		"tourn_fee":           "Entry Fee",
		"tourn_apply":         "Register Beat",
		"tourn_apply_success": "Application Submitted!",
		"tourn_bracket_title": "Tournament Bracket",

		// Admin
		"admin_title":               "System Administration",
		"admin_action_ban":          "Ban User",
		"admin_action_unban":        "Unban User",
		"admin_action_verify":       "Set Verification",
		"admin_action_badge":        "Award Badge",
		"admin_action_delete":       "Delete Post",
		"admin_action_feature":      "Feature Post",
		"admin_action_create_tourn": "Create Tournament",

		// Arcade
		"game_title":        "Sonic Instinct",
		"game_subtitle":     "Test your ears. Guess the beat. Earn badges.",
		"game_score":        "Score",
		"game_correct":      "Correct!",
		"game_wrong":        "Wrong!",
		"game_game_over":    "Session Ended",
		"game_final_score":  "Final Score",
		"game_earned_badge": "Badge Unlocked!",

		// Common
		"common_search": "Search",
	},
	language.Serbian: {
		// Navbar
		"nav_feed":               "Feed",
		"nav_discover":           "Discover",
		"nav_upload":             "Upload",
		"nav_messages":           "Poruke",
		"nav_notifications":      "Notifikacije",
		"nav_profile":            "Profil",
		"nav_dashboard":          "Dashboard",
		"nav_tournaments":        "Turniri",
		"nav_admin":              "Admin",
		"nav_game":               "Arcade",
		"nav_search_placeholder": "PRETRAGA...",

		// Landing
		"landing_login":    "Login",
		"landing_signup":   "Sign Up",
		"landing_subtitle": "Frekvencija za producente. Deli projekte, vizualizuj trake i kolaboriraj u realnom vremenu.",
		"landing_enter":    "Enter Frequency",
		"landing_footer":   "© 2024 EVLFRQ. Audio Engine Active.",

		// Feed
		"feed_add_beat": "Upload Beat",
		"feed_end":      "Kraj trake",

		// Profile
		"profile_edit":      "Edit Profile",
		"profile_connect":   "Connect",
		"profile_connected": "Connected",
		"profile_tracks":    "Tracks",
		"profile_followers": "Followers",
		"profile_following": "Following",

		// Upload
		"upload_title":  "Upload New Beat",
		"upload_submit": "Objavi na Feed",

		// Discover
		"discover_title":      "Discover",
		"discover_results":    "Rezultati",
		"discover_no_results": "Nema rezultata za",
		"discover_follow":     "Follow",

		// Notifications
		"notifications_title": "Notifikacije",
		"notifications_empty": "Nemaš novih notifikacija.",

		// Post detail
		"post_detail_comments":    "Komentari",
		"post_detail_add_comment": "Baci komentar...",
		"post_detail_no_comments": "Nema komentara. Budi prvi!",

		// Tournaments
		"tourn_title":         "Beat Turniri",
		"tourn_active":        "Aktivan",
		"tourn_registration":  "Registracija",
		"tourn_prize":         "Nagradni Fond",
		"tourn_fee":           "Učešće",
		"tourn_apply":         "Prijavi Traku",
		"tourn_apply_success": "Prijava Poslata!",
		"tourn_bracket_title": "Kostur Turnira",

		// Admin
		"admin_title":               "Sistemska Administracija",
		"admin_action_ban":          "Banuj Korisnika",
		"admin_action_unban":        "Odbanuj",
		"admin_action_verify":       "Verifikuj",
		"admin_action_badge":        "Dodeli Bedž",
		"admin_action_delete":       "Obriši Traku",
		"admin_action_feature":      "Pinuj Traku",
		"admin_action_create_tourn": "Kreiraj Turnir",

		// Arcade
		"game_title":        "Sonic Instinct",
		"game_subtitle":     "Testiraj sluh. Pogodi beat. Osvoji bedževe.",
		"game_score":        "Bodovi",
		"game_correct":      "Tačno!",
		"game_wrong":        "Pogrešno!",
		"game_game_over":    "Kraj Sesije",
		"game_final_score":  "Finalni Rezultat",
		"game_earned_badge": "Novi Bedž Otključan!",

		// Common
		"common_search": "Search",
	},
}
