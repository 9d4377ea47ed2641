package consts

// ReleaseTags is the fixed vocabulary of release-group, codec and source
// tags stripped from filenames during cleaning. Matching is case-insensitive
// and longer tags always win over shorter tags contained within them.
var ReleaseTags = []string{
	"web-dl", "blueray", "dd5.1", "cmrg",
	"[tgx]", "hevc", "webrip", "hdr", "av1", "opus",
	"5.1", "h265", "x265", "x264", "h264",
}
