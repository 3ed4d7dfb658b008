package model

type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}
