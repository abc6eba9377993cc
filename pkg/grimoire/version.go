package grimoire

const Version = "0.3.0"
