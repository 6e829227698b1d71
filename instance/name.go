package instance

// AppName is what the tool calls itself: the cobra Use line, the config file
// name, and error prefixes. Overwrite it before calling cmd.Main when
// embedding jrun under another name.
var AppName = "jrun"
