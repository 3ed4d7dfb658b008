package render

type MessageKind int

const (
	MessageLoadFailed MessageKind = iota
	MessageEmpty
	MessageNoMore
	MessageNoSlides
	MessageNoImages
)

type message struct {
	Text  string
	Class string
}

var messages = map[MessageKind]message{
	MessageLoadFailed: {Text: "ত্রুটির কারণে নোটিশ লোড করা সম্ভব হয়নি।", Class: "text-red-500"},
	MessageEmpty:      {Text: "কোনো নোটিশ পাওয়া যায়নি।", Class: "text-gray-600"},
	MessageNoMore:     {Text: "বর্তমানে আর কোন নোটিশ নেই।", Class: "text-gray-800"},
	MessageNoSlides:   {Text: "No slides to display.", Class: "text-gray-500"},
	MessageNoImages:   {Text: "কোনো ছবি পাওয়া যায়নি।", Class: "text-gray-500"},
}

// MessageText returns the visitor facing text for kind.
func MessageText(kind MessageKind) string {
	return messages[kind].Text
}
