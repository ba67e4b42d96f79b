// Package preprocess prepares the raw bytes of an OFX or OFC file for tokenizing: it splits off
// and parses the header, converts the body to UTF-8, removes proprietary tags and fixes up data
// known to be broken.
package preprocess

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/golang/glog"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// FileType is the format of a financial data file.
type FileType int

const (
	// Unknown asks Prepare to detect the file type.
	Unknown FileType = iota
	OFX
	OFC
)

func (t FileType) String() string {
	switch t {
	case OFX:
		return "OFX"
	case OFC:
		return "OFC"
	}
	return "UNKNOWN"
}

// ErrNoRoot is returned when the document root tag can not be found.
var ErrNoRoot = errors.New("error - invalid file, OFX tag not found")

var (
	rootPattern      = regexp.MustCompile(`(?i)<(OFX|OFC)\s*>`)
	xmlHeaderPattern = regexp.MustCompile(`(?s)<\?OFX\s(.*?)\?>`)
	xmlAttrPattern   = regexp.MustCompile(`(\w+)\s*=\s*"([^"]*)"`)
	openTagPattern   = regexp.MustCompile(`<([^/!?<>][^<>]*)>`)
	// Some banks omit the BANKACCTFROM aggregate around the account of a statement.
	missingAcctFrom = regexp.MustCompile(`(?s)(<CURDEF>[^<]*(?:</CURDEF>)?\s*)(<BANKID>.*?)(<BANKTRANLIST>|<LEDGERBAL>|</STMTRS>)`)
)

// Document is a pre-processed file.
type Document struct {
	Type   FileType
	XML    bool              // The file is OFX 2.x XML.
	Header map[string]string // Header fields, e.g. ENCODING and CHARSET.
	Body   []byte            // The document from its root tag on, in UTF-8.
}

// Prepare splits data into header and body and cleans the body up. A fileType of Unknown is
// detected from the root tag.
func Prepare(data []byte, fileType FileType) (*Document, error) {
	if fileType == Unknown {
		fileType = DetectFileType(data)
	}
	start := rootIndex(data, fileType)
	if start < 0 {
		return nil, ErrNoRoot
	}

	head := data[:start]
	doc := &Document{
		Type:   fileType,
		XML:    bytes.Contains(head, []byte("<?xml")),
		Header: ParseHeader(head),
	}
	body := data[start:]
	if !doc.XML {
		var err error
		if body, err = Decode(body, doc.Header); err != nil {
			return nil, err
		}
	}
	body = SanitizeProprietaryTags(body)
	doc.Body = FixMissingAccountAggregate(body)
	return doc, nil
}

// DetectFileType returns the type named by the first root tag found in data.
func DetectFileType(data []byte) FileType {
	match := rootPattern.FindSubmatch(data)
	if match == nil {
		return Unknown
	}
	if strings.EqualFold(string(match[1]), "OFC") {
		return OFC
	}
	return OFX
}

func rootIndex(data []byte, fileType FileType) int {
	for _, loc := range rootPattern.FindAllSubmatchIndex(data, -1) {
		if strings.EqualFold(string(data[loc[2]:loc[3]]), fileType.String()) {
			return loc[0]
		}
	}
	return -1
}

// ParseHeader parses the NAME:VALUE lines of an OFX 1.x header, or the attributes of the
// <?OFX ...?> processing instruction of an OFX 2.x header.
func ParseHeader(head []byte) map[string]string {
	header := make(map[string]string)
	if match := xmlHeaderPattern.FindSubmatch(head); match != nil {
		for _, attr := range xmlAttrPattern.FindAllSubmatch(match[1], -1) {
			header[strings.ToUpper(string(attr[1]))] = string(attr[2])
		}
		return header
	}
	for _, line := range strings.Split(string(head), "\n") {
		i := strings.IndexByte(line, ':')
		if i <= 0 {
			continue
		}
		name := strings.ToUpper(strings.TrimSpace(line[:i]))
		value := strings.TrimSpace(line[i+1:])
		glog.V(2).Infof("header: %s with value: %s has been found", name, value)
		header[name] = value
	}
	return header
}

// Decode converts body to UTF-8 from the encoding and charset named in header.
// Documents without a header are taken to be UTF-8 already.
func Decode(body []byte, header map[string]string) ([]byte, error) {
	enc := sourceEncoding(header)
	if enc == nil {
		return body, nil
	}
	out, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return nil, fmt.Errorf("error - converting to UTF-8: %v", err)
	}
	return out, nil
}

// sourceEncoding returns the encoding of a document, or nil for UTF-8.
func sourceEncoding(header map[string]string) encoding.Encoding {
	if len(header) == 0 {
		return nil
	}
	switch strings.ToUpper(header["ENCODING"]) {
	case "UTF-8", "UNICODE":
		return nil
	case "USASCII":
		switch strings.ToUpper(header["CHARSET"]) {
		case "ISO-8859-1", "8859-1":
			return charmap.ISO8859_1
		}
	}
	return charmap.Windows1252
}

// SanitizeProprietaryTags removes tags containing a '.' (e.g. INTU.BID) and CATEGORY tags,
// together with their data and their end tag when it directly follows the data.
func SanitizeProprietaryTags(body []byte) []byte {
	var out bytes.Buffer
	pos := 0
	for {
		loc := openTagPattern.FindSubmatchIndex(body[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		name := string(body[pos+loc[2] : pos+loc[3]])
		if !isProprietary(name) {
			out.Write(body[pos:end])
			pos = end
			continue
		}

		out.Write(body[pos:start])
		next := bytes.IndexByte(body[end:], '<')
		if next < 0 {
			glog.V(1).Infof("removed proprietary tag: %s", body[start:])
			pos = len(body)
			break
		}
		stop := end + next
		if closing := []byte("</" + name + ">"); bytes.HasPrefix(body[stop:], closing) {
			stop += len(closing)
		}
		glog.V(1).Infof("removed proprietary tag: %s", body[start:stop])
		pos = stop
	}
	out.Write(body[pos:])
	return out.Bytes()
}

func isProprietary(name string) bool {
	name = strings.TrimSpace(name)
	return strings.Contains(name, ".") || strings.EqualFold(name, "CATEGORY")
}

// FixMissingAccountAggregate wraps the account of a bank statement in a BANKACCTFROM aggregate when
// the bank left it out.
func FixMissingAccountAggregate(body []byte) []byte {
	return missingAcctFrom.ReplaceAll(body, []byte("$1<BANKACCTFROM>$2</BANKACCTFROM>$3"))
}
