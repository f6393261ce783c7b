package api

import (
	"sort"

	"github.com/samber/lo"
)

// UnknownCode is the description of any code missing from the table.
const UnknownCode = "Unknown Code"

// Error codes reported by the API. 1xxx are API-level, 2xxx access and firewall, 3xxx per-feature validation.
const (
	CodeVersionMissing        = 1000
	CodeVersionRemoved        = 1001
	CodeClassMissing          = 1002
	CodeFunctionMissing       = 1003
	CodeInsufficientRights    = 1004
	CodeInvalidLoginToken     = 1005
	CodeFunctionLocked        = 1006
	CodeFirewall              = 2000
	CodeNewsFailed            = 2001
	CodeLoginMissing          = 3000
	CodeLoginInvalid          = 3001
	CodeNotificationsNoLogin  = 3002
	CodeUserinfoNoUser        = 3003
	CodeUcpNoLogin            = 3004
	CodeUcpNoCategory         = 3005
	CodeUcpInvalidID          = 3006
	CodeInfoInvalidID         = 3007
	CodeInfoInvalidType       = 3008
	CodeInfoNoLogin           = 3009
	CodeInfoAlreadyListed     = 3010
	CodeInfoFavoritesExceeded = 3011
	CodeLoginAlready          = 3012
	CodeLoginOtherUser        = 3013
	CodeUserAccessDenied      = 3014
	CodeListNoCategory        = 3015
	CodeListNoMedium          = 3016
	CodeMediaNoStyle          = 3017
	CodeMediaNoEntry          = 3018
	CodeMangaNoChapter        = 3019
	CodeAnimeNoEpisode        = 3020
	CodeAnimeNoStream         = 3021
	CodeUcpNoEpisode          = 3022
	CodeMessagesNoLogin       = 3023
	CodeMessagesBadConference = 3024
	CodeMessagesBadReport     = 3025
	CodeMessagesBadMessage    = 3026
	CodeMessagesBadUser       = 3027
	CodeMessagesUserLimit     = 3028
	CodeMessagesBadTopic      = 3029
	CodeMessagesNoMembers     = 3030
	CodeChatBadRoom           = 3031
	CodeChatNoPermission      = 3032
	CodeChatBadMessage        = 3033
	CodeChatNoLogin           = 3034
	CodeListBadLanguage       = 3035
	CodeListBadType           = 3036
	CodeListBadID             = 3037
)

var descriptions = map[int]string{
	CodeVersionMissing:        "API-Version existiert nicht.",
	CodeVersionRemoved:        "API-Version wurde entfernt.",
	CodeClassMissing:          "API-Klasse existiert nicht.",
	CodeFunctionMissing:       "API-Funktion existiert nicht.",
	CodeInsufficientRights:    "Der API-Schlüssel besitzt nicht ausreichend Rechte um diese Aktion durchzuführen.",
	CodeInvalidLoginToken:     "Es wurde ein ungültiges Login-Token verwendet.",
	CodeFunctionLocked:        "Die aufgerufene Funktion wurde gesperrt.",
	CodeFirewall:              "IP von Firewall geblockt.",
	CodeNewsFailed:            "News: Fehler bei der Abfrage der News.",
	CodeLoginMissing:          "Login: Fehlende Login-Daten.",
	CodeLoginInvalid:          "Login: Ungültige Login-Daten.",
	CodeNotificationsNoLogin:  "Notifications: User nicht eingeloggt.",
	CodeUserinfoNoUser:        "Userinfo: Userid existiert nicht.",
	CodeUcpNoLogin:            "Ucp: User nicht eingeloggt.",
	CodeUcpNoCategory:         "Ucp: Kategorie existiert nicht.",
	CodeUcpInvalidID:          "Ucp: Ungültige ID.",
	CodeInfoInvalidID:         "Info: Ungültige ID.",
	CodeInfoInvalidType:       "Info: setUserInfo: Ungültiger Typ.",
	CodeInfoNoLogin:           "Info: setUserInfo: User nicht eingeloggt.",
	CodeInfoAlreadyListed:     "Info: setUserInfo: Werk bereits in Liste enthalten.",
	CodeInfoFavoritesExceeded: "Info: setUserInfo: Anzahl zulässiger Favoriten überschritten.",
	CodeLoginAlready:          "Login: Der User ist bereits eingeloggt.",
	CodeLoginOtherUser:        "Login: Ein anderer User ist bereits eingeloggt.",
	CodeUserAccessDenied:      "User: Der Zugriff auf die gesuchte Information wurde verweigert (möglicherweise sollte ein User eingeloggt werden).",
	CodeListNoCategory:        "List: Kategorie existiert nicht.",
	CodeListNoMedium:          "List: Medium existiert nicht.",
	CodeMediaNoStyle:          "Media: Stil existiert nicht.",
	CodeMediaNoEntry:          "Media: Eintrag existiert nicht.",
	CodeMangaNoChapter:        "Manga: Kapitel existiert nicht (nicht hochgeladen).",
	CodeAnimeNoEpisode:        "Anime: Episode existiert nicht (keine Streams).",
	CodeAnimeNoStream:         "Anime: Stream existiert nicht.",
	CodeUcpNoEpisode:          "Ucp: Episode existiert nicht.",
	CodeMessagesNoLogin:       "Messages: Der User ist nicht eingeloggt.",
	CodeMessagesBadConference: "Messages: Ungültige Konferenz (fehlende Berechtigung oder fehlerhafte Konferenz-ID).",
	CodeMessagesBadReport:     "Messages: Ungültige/Fehlende Eingabe bei Meldegrund.",
	CodeMessagesBadMessage:    "Messages: Ungültige/Fehlende Nachricht.",
	CodeMessagesBadUser:       "Messages: Ungültiger Benutzer.",
	CodeMessagesUserLimit:     "Messages: Die maximale Anzahl an Usern wurde erreicht.",
	CodeMessagesBadTopic:      "Messages: Ungültiges/Fehlendes Thema.",
	CodeMessagesNoMembers:     "Messages: Es muss mindestens ein Benutzer in einer Konferenz hinzugefügt werden.",
	CodeChatBadRoom:           "Chat: Ungültiger Raum.",
	CodeChatNoPermission:      "Chat: Keine Berechtigungen.",
	CodeChatBadMessage:        "Chat: Ungültige Nachricht.",
	CodeChatNoLogin:           "Chat: Nicht eingeloggt.",
	CodeListBadLanguage:       "List: Ungültige Sprache.",
	CodeListBadType:           "List: Ungültiger Typ.",
	CodeListBadID:             "List: Ungültige ID.",
}

// Describe returns the human-readable description of an API error code.
func Describe(code int) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return UnknownCode
}

// Codes returns every code with a known description in ascending order.
func Codes() []int {
	codes := lo.Keys(descriptions)
	sort.Ints(codes)
	return codes
}
