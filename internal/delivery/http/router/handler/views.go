package handler

import (
	"time"

	"farmkitchen/internal/domain/entity"
)

// View structs shape the JSON the API returns. Domain entities stay free of
// wire tags; the conversion happens here.

type userView struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Address     string    `json:"address,omitempty"`
	Avatar      string    `json:"avatar,omitempty"`
	Coordinates []float64 `json:"coordinates,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toUserView(user *entity.User) *userView {
	if user == nil {
		return nil
	}

	view := &userView{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role.String(),
		Address:   user.Address,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if user.HasLocation() {
		view.Coordinates = []float64{user.Location.Lon(), user.Location.Lat()}
	}

	return view
}

// userSummaryView is the compact account shape embedded in other payloads.
type userSummaryView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUserSummaryView(user *entity.User) *userSummaryView {
	if user == nil {
		return nil
	}

	return &userSummaryView{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}
}

type productView struct {
	ID          string           `json:"id"`
	FarmerID    string           `json:"farmerId"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Price       float64          `json:"price"`
	Stock       int              `json:"stock"`
	ImageURL    string           `json:"imageUrl,omitempty"`
	Organic     bool             `json:"organic"`
	Coordinates []float64        `json:"coordinates"`
	Farmer      *userSummaryView `json:"farmer,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func toProductView(product *entity.Product) *productView {
	if product == nil {
		return nil
	}

	return &productView{
		ID:          product.ID.String(),
		FarmerID:    product.FarmerID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		ImageURL:    product.ImageURL,
		Organic:     product.Organic,
		Coordinates: []float64{product.Location.Lon(), product.Location.Lat()},
		Farmer:      toUserSummaryView(product.Farmer),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

func toProductViews(products []*entity.Product) []*productView {
	views := make([]*productView, 0, len(products))
	for _, product := range products {
		views = append(views, toProductView(product))
	}

	return views
}

type cartItemView struct {
	ID        string       `json:"id"`
	ProductID string       `json:"productId"`
	Quantity  int          `json:"qty"`
	Product   *productView `json:"product,omitempty"`
}

type cartView struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Items     []*cartItemView `json:"items"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func toCartView(cart *entity.Cart) *cartView {
	if cart == nil {
		return nil
	}

	items := make([]*cartItemView, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, &cartItemView{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			Product:   toProductView(item.Product),
		})
	}

	return &cartView{
		ID:        cart.ID.String(),
		UserID:    cart.UserID.String(),
		Items:     items,
		UpdatedAt: cart.UpdatedAt,
	}
}

type orderItemView struct {
	ID        string       `json:"id"`
	ProductID string       `json:"productId"`
	FarmerID  string       `json:"farmerId"`
	Quantity  int          `json:"qty"`
	UnitPrice float64      `json:"price"`
	Product   *productView `json:"product,omitempty"`
}

type orderView struct {
	ID          string           `json:"id"`
	ConsumerID  string           `json:"consumerId"`
	Items       []*orderItemView `json:"items"`
	TotalAmount float64          `json:"totalAmount"`
	Status      string           `json:"status"`
	Consumer    *userSummaryView `json:"consumer,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func toOrderView(order *entity.Order) *orderView {
	if order == nil {
		return nil
	}

	items := make([]*orderItemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, &orderItemView{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			FarmerID:  item.FarmerID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Product:   toProductView(item.Product),
		})
	}

	return &orderView{
		ID:          order.ID.String(),
		ConsumerID:  order.ConsumerID.String(),
		Items:       items,
		TotalAmount: order.TotalAmount,
		Status:      order.Status.String(),
		Consumer:    toUserSummaryView(order.Consumer),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

func toOrderViews(orders []*entity.Order) []*orderView {
	views := make([]*orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, toOrderView(order))
	}

	return views
}

type reviewView struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"productId"`
	ConsumerID   string    `json:"consumerId"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	ReviewerName string    `json:"reviewerName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toReviewView(review *entity.Review) *reviewView {
	if review == nil {
		return nil
	}

	return &reviewView{
		ID:           review.ID.String(),
		ProductID:    review.ProductID.String(),
		ConsumerID:   review.ConsumerID.String(),
		Rating:       review.Rating,
		Comment:      review.Comment,
		ReviewerName: review.ReviewerName,
		CreatedAt:    review.CreatedAt,
		UpdatedAt:    review.UpdatedAt,
	}
}

type messageView struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	RecipientID string    `json:"recipientId"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toMessageView(message *entity.Message) *messageView {
	if message == nil {
		return nil
	}

	return &messageView{
		ID:          message.ID.String(),
		SenderID:    message.SenderID.String(),
		RecipientID: message.RecipientID.String(),
		Text:        message.Text,
		CreatedAt:   message.CreatedAt,
	}
}

type conversationView struct {
	User        *userSummaryView `json:"user"`
	LastMessage string           `json:"lastMessage"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func toConversationViews(conversations []*entity.Conversation) []*conversationView {
	views := make([]*conversationView, 0, len(conversations))
	for _, conv := range conversations {
		views = append(views, &conversationView{
			User:        toUserSummaryView(conv.Partner),
			LastMessage: conv.LastMessage,
			UpdatedAt:   conv.UpdatedAt,
		})
	}

	return views
}
