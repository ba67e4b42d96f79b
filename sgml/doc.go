/*
Package sgml tokenizes OFX/OFC SGML (and OFX 2.x XML) into element events.

OFX SGML routinely omits the end tags of data elements and sometimes of aggregates. The
tokenizer infers the missing tags from a catalogue of known aggregates and data elements,
falling back to a one token lookahead for tags it does not know, and reports every start, end
and character data event to a Handler.
*/
package sgml
