package directory

// UserRecord is a normalized directory entry.
type UserRecord struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email,omitempty"`
	AccountID   string `json:"accountId"`
}

// jiraUser is one element of the /rest/api/3/user/search response.
type jiraUser struct {
	AccountID    string `json:"accountId"`
	AccountType  string `json:"accountType,omitempty"`
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress,omitempty"`
	Active       bool   `json:"active"`
}

func (u jiraUser) toRecord() UserRecord {
	return UserRecord{
		DisplayName: u.DisplayName,
		Email:       u.EmailAddress,
		AccountID:   u.AccountID,
	}
}

// Resolution pairs a mention with the user it resolved to.
type Resolution struct {
	Mention string     `json:"mention"`
	User    UserRecord `json:"user"`
}

// ResolutionMap maps mention strings to resolved users. Mentions without a
// match are absent. It is read-only once built.
type ResolutionMap struct {
	entries []Resolution
	index   map[string]int
}

func newResolutionMap(entries []Resolution) ResolutionMap {
	index := make(map[string]int, len(entries))
	for i, e := range entries {
		index[e.Mention] = i
	}
	return ResolutionMap{entries: entries, index: index}
}

// Get returns the user a mention resolved to.
func (m ResolutionMap) Get(mention string) (UserRecord, bool) {
	i, ok := m.index[mention]
	if !ok {
		return UserRecord{}, false
	}
	return m.entries[i].User, true
}

func (m ResolutionMap) Len() int {
	return len(m.entries)
}

// Entries returns the resolutions in original mention order.
func (m ResolutionMap) Entries() []Resolution {
	out := make([]Resolution, len(m.entries))
	copy(out, m.entries)
	return out
}

// Mentions returns the resolved mention strings in original order.
func (m ResolutionMap) Mentions() []string {
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Mention
	}
	return out
}

// Users returns the distinct users by account id, in first-mention order.
// Two spellings of the same person ("@jane", "@Jane Doe") collapse here.
func (m ResolutionMap) Users() []UserRecord {
	seen := make(map[string]bool, len(m.entries))
	users := make([]UserRecord, 0, len(m.entries))

	for _, e := range m.entries {
		key := e.User.AccountID
		if key == "" {
			key = "mention:" + e.Mention
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		users = append(users, e.User)
	}

	return users
}

// ByMention returns a copy of the map as a plain Go map.
func (m ResolutionMap) ByMention() map[string]UserRecord {
	out := make(map[string]UserRecord, len(m.entries))
	for _, e := range m.entries {
		out[e.Mention] = e.User
	}
	return out
}
