package bungie

import "strings"

// DefaultUserAgent identifies this library when no user agent is configured.
const DefaultUserAgent = "bungienet-go/1.0.0"

// UserAgent describes the User-Agent header sent to the platform. It is either
// a UserAgentString, used verbatim, or a UserAgentInfo.
type UserAgent interface {
	userAgent()
}

// UserAgentString overrides the User-Agent header entirely.
type UserAgentString string

// UserAgentInfo is formatted as "Name/Version AppId/<id> (+website;mail)".
type UserAgentInfo struct {
	Name           string
	Version        string
	ContactWebsite string
	ContactMail    string
}

func (UserAgentString) userAgent() {}
func (UserAgentInfo) userAgent()   {}

// FormatUserAgent renders ua, adding the application id when one is known.
// A nil ua, or an info without name or version, yields DefaultUserAgent.
func FormatUserAgent(ua UserAgent, appID string) string {
	switch v := ua.(type) {
	case UserAgentString:
		return string(v)
	case *UserAgentInfo:
		if v == nil {
			return DefaultUserAgent
		}
		return v.format(appID)
	case UserAgentInfo:
		return v.format(appID)
	default:
		return DefaultUserAgent
	}
}

func (u UserAgentInfo) format(appID string) string {
	if u.Name == "" || u.Version == "" {
		return DefaultUserAgent
	}
	var sb strings.Builder
	sb.WriteString(u.Name)
	sb.WriteByte('/')
	sb.WriteString(u.Version)
	if appID != "" {
		sb.WriteString(" AppId/")
		sb.WriteString(appID)
	}

	var contacts []string
	if u.ContactWebsite != "" {
		contacts = append(contacts, u.ContactWebsite)
	}
	if u.ContactMail != "" {
		contacts = append(contacts, u.ContactMail)
	}
	if len(contacts) > 0 {
		sb.WriteString(" (+")
		sb.WriteString(strings.Join(contacts, ";"))
		sb.WriteByte(')')
	}
	return sb.String()
}
