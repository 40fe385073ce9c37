package dump

// Header names from the svnadmin dump format. Only the revision-number and
// content-length headers are acted on; everything else passes through in the
// record's header table.
const (
	VersionHeader           = "SVN-fs-dump-format-version"
	UUIDHeader              = "UUID"
	RevisionNumberHeader    = "Revision-number"
	ContentLengthHeader     = "Content-length"
	PropContentLengthHeader = "Prop-content-length"
	NodePathHeader          = "Node-path"
)
