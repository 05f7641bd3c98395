package github

// ResolveWebURL converts a github:// location to its page on github.com.
// github://owner/repo/path?ref=main -> https://github.com/owner/repo/blob/main/path
// Unparseable locations resolve to "".
func ResolveWebURL(location string) string {
	loc, err := ParseLocation(location)
	if err != nil {
		return ""
	}
	ref := loc.Ref
	if ref == "" {
		ref = "HEAD"
	}
	return "https://github.com/" + loc.Owner + "/" + loc.Repo + "/blob/" + ref + "/" + loc.Path
}
