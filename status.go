package ofxevent

type statusPayload struct {
	data StatusData
}

func newStatusContainer(s *Session, parent *container, tag string) *container {
	p := &statusPayload{}
	if parent != nil {
		p.data.ElementName.Set(parent.tag)
	}
	return &container{tag: tag, parent: parent, session: s, payload: p}
}

func (p *statusPayload) addAttribute(c *container, id, value string) bool {
	switch id {
	case "CODE":
		code, err := parseInt(value)
		if err != nil {
			message(msgWarning, "%s: CODE %q is not a number", c.tag, value)
		}
		sc := lookupStatusCode(code)
		p.data.Code.Set(code)
		p.data.Name.Set(sc.name)
		p.data.Description.Set(sc.description)
	case "SEVERITY":
		switch StatusSeverity(value) {
		case SeverityInfo, SeverityWarn, SeverityError:
			p.data.Severity.Set(StatusSeverity(value))
		default:
			message(msgError, "%s: unknown SEVERITY %q", c.tag, value)
			p.data.Severity.Clear()
		}
	case "MESSAGE", "MESSAGE2":
		p.data.ServerMessage.Set(value)
	default:
		return false
	}
	return true
}
