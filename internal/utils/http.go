package utils

import (
	"mime"
	"path"
	"regexp"
	"strconv"
	"strings"
)

var quotedFilenameRe = regexp.MustCompile(`filename="?([^";]+)"?`)

// FilenameFromContentDisposition returns the file name suggested by a
// Content-Disposition header value, or an empty string when none is present.
//
// RFC 6266 values are parsed with mime.ParseMediaType (which also decodes
// filename*=UTF-8''...). Malformed headers fall back to a lenient
// filename="..." match. Any directory components are stripped.
//
// Example usage:
//
//	name := utils.FilenameFromContentDisposition(`attachment; filename="invoice.pdf"`)
//	// name == "invoice.pdf"
func FilenameFromContentDisposition(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}

	var name string
	if _, params, err := mime.ParseMediaType(header); err == nil {
		name = params["filename"]
	}
	if name == "" {
		if m := quotedFilenameRe.FindStringSubmatch(header); len(m) == 2 {
			name = m[1]
		}
	}

	name = strings.TrimSpace(strings.ReplaceAll(name, `\`, "/"))
	if name == "" {
		return ""
	}

	base := path.Base(name)
	if base == "." || base == "/" || base == ".." {
		return ""
	}
	return base
}

// JoinFileIDs renders ids the way the backend expects them in the file_ids
// query parameter: decimal values separated by commas.
//
// Example usage:
//
//	utils.JoinFileIDs([]int64{1, 2, 3}) // "1,2,3"
func JoinFileIDs(ids []int64) string {
	return joinIDs(ids, ",")
}

// JoinFileIDsForName renders ids for use inside a file name.
func JoinFileIDsForName(ids []int64) string {
	return joinIDs(ids, "_")
}

func joinIDs(ids []int64, sep string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, sep)
}
