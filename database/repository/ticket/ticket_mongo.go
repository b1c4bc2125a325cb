// File: database/repository/ticket/ticket_mongo.go
package ticketRepo

import (
	"context"
	"fmt"
	"time"

	"homeserve/database"
	"homeserve/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TicketRepository defines persistence operations for support tickets.
type TicketRepository interface {
	Create(ticket *models.SupportTicket) error
	GetByID(id string) (*models.SupportTicket, error)
	ListByOrigins(origins []string) ([]models.SupportTicket, error)
	ListByRequester(requesterID string) ([]models.SupportTicket, error)
	UpdateStatus(id, status string) error
}

// MongoTicketRepo is the MongoDB implementation of TicketRepository.
type MongoTicketRepo struct {
	coll *mongo.Collection
}

func NewMongoTicketRepo() *MongoTicketRepo {
	return &MongoTicketRepo{coll: database.Collection("tickets")}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

// Create inserts a new ticket document.
func (r *MongoTicketRepo) Create(ticket *models.SupportTicket) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, ticket)
	if err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	return nil
}

// GetByID fetches a ticket by ID. Returns (nil, nil) when absent.
func (r *MongoTicketRepo) GetByID(id string) (*models.SupportTicket, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var ticket models.SupportTicket
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&ticket)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ticket with id %s: %w", id, err)
	}
	return &ticket, nil
}

// ListByOrigins returns tickets whose origin is in the given set,
// newest first. An empty set yields no tickets.
func (r *MongoTicketRepo) ListByOrigins(origins []string) ([]models.SupportTicket, error) {
	if len(origins) == 0 {
		return nil, nil
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"origin": bson.M{"$in": origins}}
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	defer cursor.Close(ctx)

	var tickets []models.SupportTicket
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, fmt.Errorf("failed to decode tickets: %w", err)
	}
	return tickets, nil
}

// ListByRequester returns all tickets raised by one requester.
func (r *MongoTicketRepo) ListByRequester(requesterID string) ([]models.SupportTicket, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.coll.Find(ctx, bson.M{"requesterId": requesterID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	defer cursor.Close(ctx)

	var tickets []models.SupportTicket
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, fmt.Errorf("failed to decode tickets: %w", err)
	}
	return tickets, nil
}

// UpdateStatus sets the status of a ticket.
func (r *MongoTicketRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update ticket with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("ticket with id %s not found", id)
	}
	return nil
}
